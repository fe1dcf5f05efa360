package telegram

import (
	"context"
	"log"

	"gopkg.in/telebot.v3"

	"github.com/marcsello/lunchvote-bot/lunch"
)

const helpMessage = "Підтримуються наступні команди:\n" +
	"/help — Показати цей хелп\n" +
	"/lunch — Проголосувати за обід\n" +
	"/go — Завершити голосування і вибрати переможців :)\n" +
	"/cancel — Скасувати поточне голосування"

func cmdHelp(ctx telebot.Context) error {
	return ctx.Send(helpMessage, telebot.ModeDefault)
}

func cmdLunch(ctx telebot.Context) error {
	return service.StartPoll(context.Background(), ctx.Chat().ID)
}

func cmdGo(ctx telebot.Context) error {
	return service.Finalize(context.Background(), ctx.Chat().ID)
}

func cmdCancel(ctx telebot.Context) error {
	return service.Cancel(context.Background(), ctx.Chat().ID)
}

func handlePollAnswer(ctx telebot.Context) error {
	answer := ctx.PollAnswer()
	if answer == nil || answer.Sender == nil {
		return nil // anonymous or channel answers carry no usable identity
	}

	err := service.HandleAnswer(context.Background(), lunch.Answer{
		PollID:  answer.PollID,
		Options: answer.Options,
		Voter:   voterFromUser(answer.Sender),
	})
	if err != nil {
		// there is no user request to respond to here, log only
		log.Println("BOT: failed to process poll answer:", err)
	}
	return nil
}

func setupHandlers(bot *telebot.Bot) {
	bot.Handle("/help", cmdHelp)

	voteCommands := bot.Group()
	voteCommands.Use(failureNotifyMiddleware)
	voteCommands.Use(groupOnlyMiddleware)
	voteCommands.Handle("/lunch", cmdLunch)
	voteCommands.Handle("/go", cmdGo)
	voteCommands.Handle("/cancel", cmdCancel)

	bot.Handle(telebot.OnPollAnswer, handlePollAnswer)
}
