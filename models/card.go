package models

const (
	ElementWater  = "water"
	ElementFire   = "fire"
	ElementNormal = "normal"
)

// Card is immutable once minted; packages group five cards under one
// sequential package number.
type Card struct {
	ID            string  `json:"Id" gorm:"primaryKey"`
	Name          string  `json:"Name" gorm:"not null"`
	ElementType   string  `json:"ElementType"`
	IsSpell       bool    `json:"IsSpell"`
	Damage        float64 `json:"Damage" gorm:"check:damage >= 0"`
	PackageNumber int     `json:"PackageNumber" gorm:"index"`
}

// StackCard links an owned, undeployed card to a user.
type StackCard struct {
	ID            uint   `gorm:"primaryKey"`
	UserToken     string `gorm:"column:user_token;index"`
	CardID        string `gorm:"column:card_id"`
	PackageNumber int
}

func (StackCard) TableName() string { return "stack" }

// DeckCard links a card a user has activated for battling.
type DeckCard struct {
	ID        uint   `gorm:"primaryKey"`
	UserToken string `gorm:"column:user_token;index"`
	CardID    string `gorm:"column:card_id"`
}

func (DeckCard) TableName() string { return "deck" }
