package telegram

import (
	"strings"

	"gopkg.in/telebot.v3"

	"github.com/marcsello/lunchvote-bot/lunch"
)

// voterFromUser captures the voter identity at the moment the answer
// arrived. The mention is preferred, the full name is the fallback; the
// name is never refreshed afterwards, even if the user renames themselves
// before the vote is finalized.
func voterFromUser(user *telebot.User) lunch.Voter {
	return lunch.Voter{
		UserID:      user.ID,
		DisplayName: displayName(user),
	}
}

func displayName(user *telebot.User) string {
	if user.Username != "" {
		return "@" + user.Username
	}

	name := user.FirstName // first name must be always present
	if user.LastName != "" {
		name += " " + user.LastName
	}
	return strings.TrimSpace(name)
}
