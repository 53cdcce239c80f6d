package handlers

import (
	"errors"
	"log"

	"github.com/az1406/MonsterCardTradingGame/game"
	"github.com/az1406/MonsterCardTradingGame/protocol"
	"github.com/az1406/MonsterCardTradingGame/repositories"
)

type BattleHandler struct {
	Users  repositories.UserRepository
	Cards  repositories.CardRepository
	Engine *game.Engine
}

func NewBattleHandler(users repositories.UserRepository, cards repositories.CardRepository, engine *game.Engine) *BattleHandler {
	return &BattleHandler{Users: users, Cards: cards, Engine: engine}
}

// Battle fights the caller against the opponent named in the payload and
// returns the battle summary.
func (h *BattleHandler) Battle(token string, details map[string]string) *protocol.Response {
	user, err := h.Users.GetByToken(token)
	if err != nil {
		log.Printf("[Battles] Error while resolving token: %v", err)
		return protocol.InternalServerError()
	}
	if user == nil {
		return protocol.Unauthorized("Invalid user token")
	}

	opponentName, ok := details["Opponent"]
	if !ok || opponentName == "" {
		return protocol.BadRequest("Opponent is required")
	}

	opponent, err := h.Users.GetByUsername(opponentName)
	if err != nil {
		log.Printf("[Battles] Error while resolving opponent: %v", err)
		return protocol.InternalServerError()
	}
	if opponent == nil {
		return protocol.BadRequest("Opponent not found")
	}

	userDeck, err := h.Cards.GetDeck(user.Token)
	if err != nil {
		log.Printf("[Battles] Error while loading decks: %v", err)
		return protocol.InternalServerError()
	}
	opponentDeck, err := h.Cards.GetDeck(opponent.Token)
	if err != nil {
		log.Printf("[Battles] Error while loading decks: %v", err)
		return protocol.InternalServerError()
	}

	summary, err := h.Engine.Run(user, opponent, userDeck, opponentDeck)
	if errors.Is(err, game.ErrEmptyDeck) {
		return protocol.BadRequest("One or both users have empty decks")
	}
	if err != nil {
		log.Printf("[Battles] Error while running battle: %v", err)
		return protocol.InternalServerError()
	}

	log.Printf("[Battles] Battle finished between %s and %s", user.Username, opponent.Username)
	return protocol.OK(summary)
}
