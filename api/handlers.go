package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/marcsello/lunchvote-bot/db"
)

func handleHealthz(ctx *gin.Context) {
	if err := db.Ping(); err != nil {
		handleInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

// handleGetPoll exposes the active poll row of a chat, mostly useful for
// checking what the bot thinks the current state is
func handleGetPoll(ctx *gin.Context) {
	chatID, err := strconv.ParseInt(ctx.Param("chat_id"), 10, 64)
	if err != nil {
		handleUserError(ctx, err)
		return
	}

	poll, err := repo.GetByChat(ctx.Request.Context(), chatID)
	if err != nil {
		handleInternalError(ctx, err)
		return
	}
	if poll == nil {
		ctx.AbortWithStatusJSON(http.StatusNotFound, gin.H{"reason": "no active poll for this chat"})
		return
	}

	ctx.JSON(http.StatusOK, pollResponse{
		ChatID:    poll.ChatID,
		PollID:    poll.PollID,
		PollMsgID: poll.PollMsgID,
		YesVoters: poll.YesVoters,
	})
}
