package main

import (
	"log"

	"gitlab.com/MikeTTh/env"

	"github.com/marcsello/lunchvote-bot/api"
	"github.com/marcsello/lunchvote-bot/db"
	"github.com/marcsello/lunchvote-bot/memdb"
	"github.com/marcsello/lunchvote-bot/telegram"
)

func main() {
	log.Println("Starting Lunch Vote Bot...")

	err := db.Connect()
	if err != nil {
		panic(err)
	}

	err = memdb.InitRedisConnection()
	if err != nil {
		panic(err)
	}

	debug := env.String("VERBOSE", "") != ""

	runBot, err := telegram.InitTelegramBot(debug)
	if err != nil {
		panic(err)
	}

	runApi, err := api.InitApi()
	if err != nil {
		panic(err)
	}

	go runApi()

	log.Println("Everything is ready! Listening for commands!")
	runBot()
}
