package api

import "github.com/marcsello/lunchvote-bot/lunch"

type pollResponse struct {
	ChatID    int64         `json:"chat_id"`
	PollID    string        `json:"tg_poll_id"`
	PollMsgID int           `json:"tg_poll_msg_id"`
	YesVoters []lunch.Voter `json:"yes_voters"`
}
