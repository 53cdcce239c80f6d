package handlers

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/az1406/MonsterCardTradingGame/protocol"
	"github.com/az1406/MonsterCardTradingGame/repositories"
	"github.com/az1406/MonsterCardTradingGame/utils"
)

type SessionHandler struct {
	Users repositories.UserRepository
}

func NewSessionHandler(users repositories.UserRepository) *SessionHandler {
	return &SessionHandler{Users: users}
}

// Login verifies the credentials and mints a fresh session token. The token
// overwrites any previous one, so only the latest login stays valid.
func (h *SessionHandler) Login(details map[string]string) *protocol.Response {
	username, hasName := details["Username"]
	password, hasPassword := details["Password"]
	if !hasName || !hasPassword {
		return protocol.BadRequest("")
	}

	user, err := h.Users.GetByUsername(username)
	if err != nil {
		log.Printf("[Sessions] Error while logging in user: %v", err)
		return protocol.InternalServerError()
	}
	if user == nil || !utils.CheckPassword(user.Password, password) {
		return protocol.BadRequest("")
	}

	user.Token = uuid.NewString()
	if err := h.Users.Update(user); err != nil {
		log.Printf("[Sessions] Error while logging in user: %v", err)
		return protocol.InternalServerError()
	}

	return protocol.OK(fmt.Sprintf("%s-mtcgToken: %s", user.Username, user.Token))
}
