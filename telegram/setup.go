package telegram

import (
	"gitlab.com/MikeTTh/env"
	"gopkg.in/telebot.v3"

	"github.com/marcsello/lunchvote-bot/db"
	"github.com/marcsello/lunchvote-bot/lunch"
	"github.com/marcsello/lunchvote-bot/memdb"
)

var telegramBot *telebot.Bot
var service *lunch.Service

func InitTelegramBot(debug bool) (func(), error) {
	var err error
	telegramBot, err = telebot.NewBot(telebot.Settings{
		Token: env.StringOrPanic("TELEGRAM_TOKEN"),
		Poller: &telebot.Webhook{
			Listen: env.String("WEBHOOK_BIND", ":8080"),
			Endpoint: &telebot.WebhookEndpoint{
				PublicURL: env.StringOrPanic("WEBHOOK_PUBLIC_URL"),
			},
			// poll_answer is not delivered by default
			AllowedUpdates: []string{"message", "poll_answer"},
		},
		Verbose: debug,
	})
	if err != nil {
		return nil, err
	}

	service = lunch.NewService(db.NewPollRepository(), &botPlatform{bot: telegramBot}, memdb.NewPollLocker())

	setupHandlers(telegramBot)

	runFunc := func() {
		telegramBot.Start()
	}

	return runFunc, nil
}
