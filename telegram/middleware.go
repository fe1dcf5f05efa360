package telegram

import (
	"log"

	"gopkg.in/telebot.v3"
)

const groupOnlyMessage = "Ця команда доступна лише в групових чатах."
const requestFailedMessage = "Помилка обробки запиту."

func groupOnlyMiddleware(next telebot.HandlerFunc) telebot.HandlerFunc {
	return func(ctx telebot.Context) error {

		t := ctx.Chat().Type
		if t != telebot.ChatGroup && t != telebot.ChatSuperGroup {
			return ctx.Reply(groupOnlyMessage, telebot.ModeDefault)
		}

		return next(ctx)
	}
}

// failureNotifyMiddleware implements the uniform failure behavior of every
// vote command: notify the chat with a generic text and log the real error
// for the operators.
func failureNotifyMiddleware(next telebot.HandlerFunc) telebot.HandlerFunc {
	return func(ctx telebot.Context) error {
		err := next(ctx)
		if err != nil {
			log.Println("BOT: command failed: ", ctx.Chat().ID, " -- ", err)
			return ctx.Send(requestFailedMessage, telebot.ModeDefault)
		}
		return nil
	}
}
