package api

import (
	"github.com/gin-gonic/gin"
	"gitlab.com/MikeTTh/env"

	"github.com/marcsello/lunchvote-bot/db"
	"github.com/marcsello/lunchvote-bot/utils"
)

var repo *db.PollRepository

func InitApi() (func(), error) {
	repo = db.NewPollRepository()
	apiTokenHash = utils.TokenHash(env.StringOrPanic("API_TOKEN"))

	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/healthz", handleHealthz)

	protected := router.Group("/")
	protected.Use(requireValidTokenMiddleware)
	protected.GET("/polls/:chat_id", handleGetPoll)

	runFunc := func() {
		err := router.Run(env.String("API_BIND", ":8081"))
		if err != nil {
			panic(err)
		}
	}

	return runFunc, nil
}
