package handlers

import (
	"encoding/json"
	"log"

	"github.com/az1406/MonsterCardTradingGame/protocol"
)

const scoreboardSize = 10

type userScore struct {
	UserName    string `json:"UserName"`
	ELO         int    `json:"ELO"`
	GamesPlayed int    `json:"GamesPlayed"`
}

// Stats returns the caller's own standing.
func (h *UserHandler) Stats(token string) *protocol.Response {
	user, err := h.Users.GetByToken(token)
	if err != nil {
		log.Printf("[Score] Error while resolving token: %v", err)
		return protocol.InternalServerError()
	}
	if user == nil {
		return protocol.Unauthorized("Invalid token")
	}

	content, err := json.Marshal(userScore{
		UserName:    user.Username,
		ELO:         user.ELO,
		GamesPlayed: user.GamesPlayed,
	})
	if err != nil {
		log.Printf("[Score] Error serializing stats: %v", err)
		return protocol.InternalServerError()
	}
	return protocol.OK(string(content))
}

// Scoreboard returns the top users ordered by ELO.
func (h *UserHandler) Scoreboard(token string) *protocol.Response {
	user, err := h.Users.GetByToken(token)
	if err != nil {
		log.Printf("[Score] Error while resolving token: %v", err)
		return protocol.InternalServerError()
	}
	if user == nil {
		return protocol.Unauthorized("Invalid token")
	}

	top, err := h.Users.TopByELO(scoreboardSize)
	if err != nil {
		log.Printf("[Score] Error while loading scoreboard: %v", err)
		return protocol.InternalServerError()
	}

	scores := make([]userScore, len(top))
	for i, u := range top {
		scores[i] = userScore{UserName: u.Username, ELO: u.ELO, GamesPlayed: u.GamesPlayed}
	}

	content, err := json.Marshal(scores)
	if err != nil {
		log.Printf("[Score] Error serializing scoreboard: %v", err)
		return protocol.InternalServerError()
	}
	return protocol.OK(string(content))
}
