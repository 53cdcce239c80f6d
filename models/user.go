package models

import "time"

// User is the account record. The token column holds the single active
// session token; a new login overwrites it, which invalidates the old one.
type User struct {
	Username    string `json:"UserName" gorm:"primaryKey"`
	Password    string `json:"-" gorm:"not null"`
	Bio         string `json:"BIO"`
	ELO         int    `json:"ELO" gorm:"default:100"`
	Coins       int    `json:"Coins" gorm:"default:20"`
	Token       string `json:"-" gorm:"index"`
	GamesPlayed int    `json:"GamesPlayed" gorm:"default:0"`
	Image       string `json:"Image"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
