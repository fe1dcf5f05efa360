package lunch

import (
	"context"
	"log"
)

// option index of "Так" in the poll sent by StartPoll
const yesOptionID = 0

// Answer is one inbound poll-answer event from the platform. Options is
// empty when the user retracted their vote.
type Answer struct {
	PollID  string
	Options []int
	Voter   Voter
}

func (a Answer) isYes() bool {
	return len(a.Options) == 1 && a.Options[0] == yesOptionID
}

// HandleAnswer applies a single answer event to the stored ledger.
// Non-yes answers and answers for unknown (already finished) polls are
// dropped. Re-delivery of an answer already in the ledger writes nothing.
// Updates for the same poll are serialized through the lock, so two
// concurrent answers of different users both end up persisted.
func (s *Service) HandleAnswer(ctx context.Context, answer Answer) error {
	if !answer.isYes() {
		return nil
	}

	release, err := s.locks.LockPoll(ctx, answer.PollID)
	if err != nil {
		return err
	}
	defer release()

	poll, err := s.repo.GetByPollID(ctx, answer.PollID)
	if err != nil {
		return err
	}
	if poll == nil {
		log.Println("LUNCH: answer for unknown poll ID:", answer.PollID)
		return nil
	}

	voters, inserted := addIfAbsent(poll.YesVoters, answer.Voter)
	if !inserted {
		return nil
	}
	poll.YesVoters = voters
	return s.repo.UpdateVoters(ctx, poll)
}
