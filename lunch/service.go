package lunch

import (
	"context"
	"errors"
	"log"
)

var (
	// ErrPollExists is reported by Repository.Create when another poll
	// already occupies the chat's row.
	ErrPollExists = errors.New("a poll already exists for this chat")

	// ErrPollGone marks a stop-poll failure caused by the live poll object
	// being absent on the platform (already closed, or its message is
	// gone). This is the only stop-poll failure Finalize tolerates.
	ErrPollGone = errors.New("poll is gone on the platform")
)

// Repository is the durable store of at most one active poll per chat.
// Lookups return (nil, nil) when no poll matches.
type Repository interface {
	GetByChat(ctx context.Context, chatID int64) (*Poll, error)
	GetByPollID(ctx context.Context, pollID string) (*Poll, error)
	Create(ctx context.Context, chatID int64, pollID string, pollMsgID int) (*Poll, error)
	UpdateVoters(ctx context.Context, poll *Poll) error
	Delete(ctx context.Context, id uint) error
}

// Platform is the messaging platform as seen from the core.
type Platform interface {
	CreatePoll(ctx context.Context, chatID int64, question string, options []string) (pollID string, pollMsgID int, err error)
	StopPoll(ctx context.Context, chatID int64, pollMsgID int) error
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// Locker serializes ledger updates per poll.
type Locker interface {
	LockPoll(ctx context.Context, pollID string) (release func(), err error)
}

// Service drives the poll lifecycle and the voter ledger. The stored poll
// row is the single source of truth; nothing is cached in-process.
type Service struct {
	repo     Repository
	platform Platform
	locks    Locker
}

func NewService(repo Repository, platform Platform, locks Locker) *Service {
	return &Service{
		repo:     repo,
		platform: platform,
		locks:    locks,
	}
}

// StartPoll opens a new lunch vote in the chat, unless one is already
// running there.
func (s *Service) StartPoll(ctx context.Context, chatID int64) error {
	existing, err := s.repo.GetByChat(ctx, chatID)
	if err != nil {
		return err
	}
	if existing != nil {
		return s.platform.SendMessage(ctx, chatID, MsgFinishCurrent)
	}

	pollID, pollMsgID, err := s.platform.CreatePoll(ctx, chatID, PollQuestion, []string{OptionYes, OptionNo})
	if err != nil {
		return err
	}

	_, err = s.repo.Create(ctx, chatID, pollID, pollMsgID)
	if errors.Is(err, ErrPollExists) {
		// lost the race against a concurrent /lunch, take down the poll
		// we just posted so only one stays live in the chat
		if stopErr := s.platform.StopPoll(ctx, chatID, pollMsgID); stopErr != nil {
			log.Println("LUNCH: could not stop the duplicate poll:", stopErr)
		}
		return s.platform.SendMessage(ctx, chatID, MsgFinishCurrent)
	}
	return err
}

// Finalize closes the running vote and announces the voters in random
// priority order. The row is deleted last, so a failed announcement leaves
// the vote retryable.
func (s *Service) Finalize(ctx context.Context, chatID int64) error {
	poll, err := s.repo.GetByChat(ctx, chatID)
	if err != nil {
		return err
	}
	if poll == nil {
		return s.platform.SendMessage(ctx, chatID, MsgCreateFirst)
	}

	// the stored row is the source of truth, a poll that is already gone
	// on the platform side does not block finishing the vote
	if err = s.platform.StopPoll(ctx, chatID, poll.PollMsgID); err != nil && !errors.Is(err, ErrPollGone) {
		return err
	}

	if len(poll.YesVoters) == 0 {
		if err = s.platform.SendMessage(ctx, chatID, MsgNobodyWantsToEat); err != nil {
			return err
		}
		return s.repo.Delete(ctx, poll.ID)
	}

	winners := shuffleVoters(poll.YesVoters)
	announcement := MsgPriorityHeader + "\n" + formatPriorityList(winners)
	if err = s.platform.SendMessage(ctx, chatID, announcement); err != nil {
		return err
	}

	return s.repo.Delete(ctx, poll.ID)
}

// Cancel abandons the running vote. Stop-poll failures never block
// cancellation.
func (s *Service) Cancel(ctx context.Context, chatID int64) error {
	poll, err := s.repo.GetByChat(ctx, chatID)
	if err != nil {
		return err
	}
	if poll == nil {
		return s.platform.SendMessage(ctx, chatID, MsgCreateFirst)
	}

	if stopErr := s.platform.StopPoll(ctx, chatID, poll.PollMsgID); stopErr != nil {
		log.Println("LUNCH: ignoring stop poll failure on cancel:", stopErr)
	}

	if err = s.repo.Delete(ctx, poll.ID); err != nil {
		return err
	}
	return s.platform.SendMessage(ctx, chatID, MsgCancelled)
}
