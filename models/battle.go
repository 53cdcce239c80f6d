package models

import "time"

// Battle is persisted twice: once at creation (round counter zero) and once
// at finalization. Exactly one of WinnerToken / IsDraw is set at the end.
type Battle struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	User1Token  string `json:"-" gorm:"column:user1_token"`
	User2Token  string `json:"-" gorm:"column:user2_token"`
	StartTime   time.Time
	EndTime     time.Time
	WinnerToken string `json:"-"`
	IsDraw      bool
	Rounds      int `gorm:"check:rounds >= 0 AND rounds <= 100"`
	User1Wins   int `gorm:"column:user1_wins"`
	User2Wins   int `gorm:"column:user2_wins"`
}
