package lunch

import (
	"context"
	"fmt"
	"sync"
)

// in-memory stand-ins for the repository, the platform and the locker

type memRepo struct {
	mu          sync.Mutex
	polls       map[uint]*Poll
	nextID      uint
	updateCalls int
	updateErr   error
	deleteErr   error
}

func newMemRepo() *memRepo {
	return &memRepo{polls: make(map[uint]*Poll), nextID: 1}
}

func clonePoll(p *Poll) *Poll {
	c := *p
	c.YesVoters = append([]Voter(nil), p.YesVoters...)
	return &c
}

func (r *memRepo) GetByChat(_ context.Context, chatID int64) (*Poll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.polls {
		if p.ChatID == chatID {
			return clonePoll(p), nil
		}
	}
	return nil, nil
}

func (r *memRepo) GetByPollID(_ context.Context, pollID string) (*Poll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.polls {
		if p.PollID == pollID {
			return clonePoll(p), nil
		}
	}
	return nil, nil
}

func (r *memRepo) Create(_ context.Context, chatID int64, pollID string, pollMsgID int) (*Poll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.polls {
		if p.ChatID == chatID {
			return nil, ErrPollExists
		}
	}
	p := &Poll{ID: r.nextID, ChatID: chatID, PollID: pollID, PollMsgID: pollMsgID}
	r.nextID++
	r.polls[p.ID] = p
	return clonePoll(p), nil
}

func (r *memRepo) UpdateVoters(_ context.Context, poll *Poll) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updateCalls++
	if r.updateErr != nil {
		return r.updateErr
	}
	stored, ok := r.polls[poll.ID]
	if !ok {
		return nil // finalized meanwhile
	}
	stored.YesVoters = append([]Voter(nil), poll.YesVoters...)
	return nil
}

func (r *memRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.polls, id)
	return nil
}

func (r *memRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.polls)
}

func (r *memRepo) setVoters(id uint, voters []Voter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.polls[id].YesVoters = append([]Voter(nil), voters...)
}

type fakePlatform struct {
	mu        sync.Mutex
	sent      []string
	created   int
	stopCalls int
	createErr error
	stopErr   error
	sendErr   error
	onCreate  func() // runs after a successful poll creation, before returning
}

func (p *fakePlatform) CreatePoll(_ context.Context, _ int64, _ string, _ []string) (string, int, error) {
	p.mu.Lock()
	if p.createErr != nil {
		defer p.mu.Unlock()
		return "", 0, p.createErr
	}
	p.created++
	pollID := fmt.Sprintf("tg-poll-%d", p.created)
	msgID := 100 + p.created
	hook := p.onCreate
	p.mu.Unlock()

	if hook != nil {
		hook()
	}
	return pollID, msgID, nil
}

func (p *fakePlatform) StopPoll(_ context.Context, _ int64, _ int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopCalls++
	return p.stopErr
}

func (p *fakePlatform) SendMessage(_ context.Context, _ int64, text string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sendErr != nil {
		return p.sendErr
	}
	p.sent = append(p.sent, text)
	return nil
}

func (p *fakePlatform) lastSent() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.sent) == 0 {
		return ""
	}
	return p.sent[len(p.sent)-1]
}

// memLocker serializes per key the same way the redis locker does, just
// in-process.
type memLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newMemLocker() *memLocker {
	return &memLocker{locks: make(map[string]*sync.Mutex)}
}

func (l *memLocker) LockPoll(_ context.Context, pollID string) (func(), error) {
	l.mu.Lock()
	m, ok := l.locks[pollID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[pollID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock, nil
}

func newTestService() (*Service, *memRepo, *fakePlatform) {
	repo := newMemRepo()
	platform := &fakePlatform{}
	return NewService(repo, platform, newMemLocker()), repo, platform
}
