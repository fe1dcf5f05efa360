package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/marcsello/lunchvote-bot/lunch"
	"gorm.io/gorm"
)

// PollRepository is the gorm-backed implementation of lunch.Repository.
type PollRepository struct{}

func NewPollRepository() *PollRepository {
	return &PollRepository{}
}

func (r *PollRepository) GetByChat(ctx context.Context, chatID int64) (*lunch.Poll, error) {
	var poll LunchPoll
	result := db.WithContext(ctx).Where("tg_chat_id = ?", chatID).First(&poll)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return poll.toDomain(), nil
}

func (r *PollRepository) GetByPollID(ctx context.Context, pollID string) (*lunch.Poll, error) {
	var poll LunchPoll
	result := db.WithContext(ctx).Where("tg_poll_id = ?", pollID).First(&poll)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return poll.toDomain(), nil
}

func (r *PollRepository) Create(ctx context.Context, chatID int64, pollID string, pollMsgID int) (*lunch.Poll, error) {
	poll := LunchPoll{
		TgChatID:    chatID,
		TgPollID:    pollID,
		TgPollMsgID: pollMsgID,
		YesVoters:   VoterList{},
	}

	result := db.WithContext(ctx).Create(&poll)
	if result.Error != nil {
		if isPgError(result.Error, "ERROR", "23505") { // duplicate key
			return nil, lunch.ErrPollExists
		}
		return nil, result.Error
	}

	return poll.toDomain(), nil
}

func (r *PollRepository) UpdateVoters(ctx context.Context, poll *lunch.Poll) error {
	result := db.WithContext(ctx).
		Model(&LunchPoll{}).
		Where("id = ?", poll.ID).
		Update("yes_voters", VoterList(poll.YesVoters))

	if result.Error != nil {
		return result.Error
	}
	// zero rows means the poll got finalized meanwhile, an UPDATE can not
	// resurrect the row so there is nothing more to do
	return nil
}

func (r *PollRepository) Delete(ctx context.Context, id uint) error {
	// deleting an already deleted row is fine, a concurrent finalize may
	// have won
	result := db.WithContext(ctx).Delete(&LunchPoll{}, id)
	return result.Error
}

func isPgError(err error, severity, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Severity == severity && pgErr.Code == code
	}
	return false
}
