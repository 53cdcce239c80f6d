package handlers

import (
	"log"

	"github.com/az1406/MonsterCardTradingGame/protocol"
	"github.com/az1406/MonsterCardTradingGame/repositories"
)

// PackagePrice is what one package costs in coins.
const PackagePrice = 5

type TransactionHandler struct {
	Cards repositories.CardRepository
	Users repositories.UserRepository
}

func NewTransactionHandler(cards repositories.CardRepository, users repositories.UserRepository) *TransactionHandler {
	return &TransactionHandler{Cards: cards, Users: users}
}

// PurchasePackage sells the current package to the caller: debit five coins,
// then move every card of the package into the caller's stack.
func (h *TransactionHandler) PurchasePackage(token string) *protocol.Response {
	user, err := h.Users.GetByToken(token)
	if err != nil {
		log.Printf("[Transactions] Error while resolving token: %v", err)
		return protocol.InternalServerError()
	}
	if user == nil {
		return protocol.Unauthorized("Invalid token")
	}

	if user.Coins < PackagePrice {
		return protocol.BadRequest("Not enough coins to buy a package")
	}

	packageNumber, err := h.Cards.CurrentPackageNumber()
	if err != nil {
		log.Printf("[Transactions] Error while purchasing package: %v", err)
		return protocol.InternalServerError()
	}

	cards, err := h.Cards.CardsInPackage(packageNumber)
	if err != nil {
		log.Printf("[Transactions] Error while purchasing package: %v", err)
		return protocol.InternalServerError()
	}
	if len(cards) == 0 {
		return protocol.BadRequest("No cards available in the package")
	}

	user.Coins -= PackagePrice
	if err := h.Users.Update(user); err != nil {
		log.Printf("[Transactions] Error while purchasing package: %v", err)
		return protocol.InternalServerError()
	}

	for _, card := range cards {
		if err := h.Cards.AddCardToStack(user.Token, card.ID, packageNumber); err != nil {
			log.Printf("[Transactions] Error while purchasing package: %v", err)
			return protocol.InternalServerError()
		}
	}

	return protocol.OK("Package purchased successfully")
}
