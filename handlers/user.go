package handlers

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/az1406/MonsterCardTradingGame/models"
	"github.com/az1406/MonsterCardTradingGame/protocol"
	"github.com/az1406/MonsterCardTradingGame/repositories"
	"github.com/az1406/MonsterCardTradingGame/utils"
)

const (
	initialCoins = 20
	initialELO   = 100
)

type UserHandler struct {
	Users repositories.UserRepository
	Cards repositories.CardRepository
}

func NewUserHandler(users repositories.UserRepository, cards repositories.CardRepository) *UserHandler {
	return &UserHandler{Users: users, Cards: cards}
}

func (h *UserHandler) Register(details map[string]string) *protocol.Response {
	username, hasName := details["Username"]
	password, hasPassword := details["Password"]
	if !hasName || !hasPassword {
		return protocol.BadRequest("")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("[Users] Failed to hash password: %v", err)
		return protocol.InternalServerError()
	}

	user := &models.User{
		Username: username,
		Password: hash,
		Coins:    initialCoins,
		ELO:      initialELO,
	}

	if err := h.Users.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserExists) {
			return protocol.Conflict("User already exists")
		}
		log.Printf("[Users] Error while registering user: %v", err)
		return protocol.InternalServerError()
	}

	return protocol.Created("")
}

func (h *UserHandler) Profile(username string) *protocol.Response {
	user, err := h.Users.GetByUsername(username)
	if err != nil {
		log.Printf("[Users] Error while retrieving profile: %v", err)
		return protocol.InternalServerError()
	}
	if user == nil {
		return protocol.NotFound("User not found")
	}

	content, err := json.Marshal(user)
	if err != nil {
		log.Printf("[Users] Error serializing profile: %v", err)
		return protocol.InternalServerError()
	}
	return protocol.OK(string(content))
}

// EditProfile updates the mutable profile fields. Only keys actually present
// in the payload are applied, so a payload with no recognized fields leaves
// the record as it was.
func (h *UserHandler) EditProfile(username, token string, details map[string]string) *protocol.Response {
	user, err := h.Users.GetByUsername(username)
	if err != nil {
		log.Printf("[Users] Error while editing profile: %v", err)
		return protocol.InternalServerError()
	}
	if user == nil {
		return protocol.NotFound("User not found")
	}
	if user.Token != token {
		return protocol.Unauthorized("Invalid token")
	}

	if bio, ok := details["Bio"]; ok {
		user.Bio = bio
	}
	if image, ok := details["Image"]; ok {
		user.Image = image
	}

	if err := h.Users.Update(user); err != nil {
		log.Printf("[Users] Error while editing profile: %v", err)
		return protocol.InternalServerError()
	}
	return protocol.OK("Profile updated successfully")
}

func (h *UserHandler) AddCardsToDeck(token string, cardIDs []string) *protocol.Response {
	user, err := h.Users.GetByToken(token)
	if err != nil {
		log.Printf("[Users] Error while resolving token: %v", err)
		return protocol.InternalServerError()
	}
	if user == nil {
		return protocol.Unauthorized("Invalid token")
	}

	for _, cardID := range cardIDs {
		if err := h.Cards.AddCardToDeck(user.Token, cardID); err != nil {
			log.Printf("[Users] Error while adding card %s to deck: %v", cardID, err)
			return protocol.InternalServerError()
		}
	}

	return protocol.OK("Cards added to deck successfully")
}

func (h *UserHandler) GetDeck(token string) *protocol.Response {
	user, err := h.Users.GetByToken(token)
	if err != nil {
		log.Printf("[Users] Error while resolving token: %v", err)
		return protocol.InternalServerError()
	}
	if user == nil {
		return protocol.Unauthorized("Invalid token")
	}

	deck, err := h.Cards.GetDeck(user.Token)
	if err != nil {
		log.Printf("[Users] Error while getting deck: %v", err)
		return protocol.InternalServerError()
	}
	if deck == nil {
		deck = []models.Card{}
	}

	content, err := json.Marshal(deck)
	if err != nil {
		log.Printf("[Users] Error serializing deck: %v", err)
		return protocol.InternalServerError()
	}
	return protocol.OK(string(content))
}
