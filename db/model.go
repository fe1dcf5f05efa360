package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/marcsello/lunchvote-bot/lunch"
)

type LunchPoll struct {
	// No gorm.Model here: deleting a finished poll must be terminal, and a
	// soft-deleted row would keep holding the chat's unique index.
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// All the tg_* identifiers are received from Telegram
	TgChatID    int64     `gorm:"not null;uniqueIndex"` // This must be a signed int, because telegram assign negative id to groups
	TgPollID    string    `gorm:"type:varchar(64) not null;uniqueIndex"`
	TgPollMsgID int       `gorm:"not null"`
	YesVoters   VoterList `gorm:"type:jsonb;not null;default:'[]'"`
}

// VoterList stores the whole ledger as a single jsonb column, keeping the
// insertion order the way a join table would not.
type VoterList []lunch.Voter

func (l VoterList) Value() (driver.Value, error) {
	if l == nil {
		l = VoterList{}
	}
	return json.Marshal(l)
}

func (l *VoterList) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	default:
		return errors.New("unsupported source type for VoterList")
	}
}

func (p *LunchPoll) toDomain() *lunch.Poll {
	return &lunch.Poll{
		ID:        p.ID,
		ChatID:    p.TgChatID,
		PollID:    p.TgPollID,
		PollMsgID: p.TgPollMsgID,
		YesVoters: []lunch.Voter(p.YesVoters),
	}
}
