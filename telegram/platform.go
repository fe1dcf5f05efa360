package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"gopkg.in/telebot.v3"

	"github.com/marcsello/lunchvote-bot/lunch"
)

// botPlatform adapts the telebot api to the lunch.Platform contract.
type botPlatform struct {
	bot *telebot.Bot
}

func (p *botPlatform) CreatePoll(_ context.Context, chatID int64, question string, options []string) (string, int, error) {
	pollOptions := make([]telebot.PollOption, len(options))
	for i, o := range options {
		pollOptions[i] = telebot.PollOption{Text: o}
	}

	poll := &telebot.Poll{
		Type:      telebot.PollRegular,
		Question:  question,
		Options:   pollOptions,
		Anonymous: false, // answers must be attributable to voters
	}

	msg, err := p.bot.Send(telebot.ChatID(chatID), poll)
	if err != nil {
		return "", 0, err
	}
	if msg.Poll == nil {
		return "", 0, fmt.Errorf("sent poll message carries no poll")
	}

	return msg.Poll.ID, msg.ID, nil
}

func (p *botPlatform) StopPoll(_ context.Context, chatID int64, pollMsgID int) error {
	_, err := p.bot.StopPoll(telebot.StoredMessage{
		MessageID: strconv.Itoa(pollMsgID),
		ChatID:    chatID,
	})
	if err != nil && isPollGone(err) {
		return fmt.Errorf("%w: %v", lunch.ErrPollGone, err)
	}
	return err
}

func (p *botPlatform) SendMessage(_ context.Context, chatID int64, text string) error {
	_, err := p.bot.Send(telebot.ChatID(chatID), text, telebot.ModeDefault)
	return err
}

// isPollGone reports whether the api rejected the stop request because the
// live poll object is absent (already closed, or its message is gone).
// Transport, auth and flood errors do not count.
func isPollGone(err error) bool {
	var tbErr *telebot.Error
	return errors.As(err, &tbErr) && tbErr.Code == http.StatusBadRequest
}
