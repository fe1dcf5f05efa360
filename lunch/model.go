package lunch

// Poll is the persisted record of one open lunch vote.
type Poll struct {
	ID        uint
	ChatID    int64
	PollID    string // poll identifier assigned by Telegram
	PollMsgID int    // id of the message carrying the poll
	YesVoters []Voter
}

// Voter is one affirmative participant. Identity is the telegram user id
// alone; the display name is whatever it was when the vote arrived and is
// never refreshed afterwards.
type Voter struct {
	UserID      int64  `json:"user_id"`
	DisplayName string `json:"display_name"`
}

// addIfAbsent appends candidate to the ledger unless a voter with the same
// user id is already present. First-seen order is retained.
func addIfAbsent(voters []Voter, candidate Voter) ([]Voter, bool) {
	for _, v := range voters {
		if v.UserID == candidate.UserID {
			return voters, false
		}
	}
	return append(voters, candidate), true
}
