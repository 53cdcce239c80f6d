package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/az1406/MonsterCardTradingGame/models"
	"github.com/az1406/MonsterCardTradingGame/protocol"
	"github.com/az1406/MonsterCardTradingGame/repositories"
)

// AdminUsername is the reserved identity allowed to mint packages.
const AdminUsername = "admin"

// PackageSize is the exact number of cards a package must contain.
const PackageSize = 5

type PackageHandler struct {
	Cards repositories.CardRepository
	Users repositories.UserRepository
}

func NewPackageHandler(cards repositories.CardRepository, users repositories.UserRepository) *PackageHandler {
	return &PackageHandler{Cards: cards, Users: users}
}

// CreatePackage mints a new package of five cards from a JSON array payload.
// Admin only.
func (h *PackageHandler) CreatePackage(token, body string) *protocol.Response {
	admin, err := h.Users.GetByToken(token)
	if err != nil {
		log.Printf("[Packages] Error while resolving token: %v", err)
		return protocol.InternalServerError()
	}
	if admin == nil || admin.Username != AdminUsername {
		return protocol.Unauthorized("Only admin can create packages")
	}

	var cards []models.Card
	if err := json.Unmarshal([]byte(body), &cards); err != nil {
		return protocol.BadRequest("Invalid JSON format")
	}
	if len(cards) == 0 {
		return protocol.BadRequest("Request body is empty or invalid")
	}
	if len(cards) != PackageSize {
		return protocol.BadRequest(fmt.Sprintf("Package must contain exactly %d cards", PackageSize))
	}

	packageNumber, err := h.Cards.NextPackageNumber()
	if err != nil {
		log.Printf("[Packages] Error while creating package: %v", err)
		return protocol.InternalServerError()
	}

	for i := range cards {
		cards[i].PackageNumber = packageNumber
		if err := h.Cards.Create(&cards[i]); err != nil {
			if errors.Is(err, repositories.ErrCardExists) {
				return protocol.Conflict(fmt.Sprintf("Card with ID %s already exists", cards[i].ID))
			}
			log.Printf("[Packages] Error while creating package: %v", err)
			return protocol.InternalServerError()
		}
	}

	return protocol.Created("Package created successfully")
}
