package api

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/marcsello/lunchvote-bot/utils"
)

// sha256 of the configured operator token, set during InitApi
var apiTokenHash []byte

func requireValidTokenMiddleware(ctx *gin.Context) {

	key, ok := parseAuthHeader(ctx, "Bearer")
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	if subtle.ConstantTimeCompare(utils.TokenHash(key), apiTokenHash) != 1 {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
}

func parseAuthHeader(ctx *gin.Context, type_ string) (string, bool) {
	authHeader := ctx.GetHeader("Authorization")

	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}

	if parts[0] != type_ {
		return "", false
	}

	return parts[1], true
}
