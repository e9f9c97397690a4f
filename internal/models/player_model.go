// player & parent models
package models

import "gorm.io/gorm"

// Player belongs to exactly one team. Trust couples the identity fields:
// a trusted player holds their own user account (and address); an untrusted
// player holds neither and is reached through parents.
type Player struct {
	gorm.Model
	Position1         string   `json:"position1"`
	Position2         string   `json:"position2"`
	JerseyNumber      string   `json:"jersey_number"`
	GradYear          string   `json:"grad_year"`
	JerseySize        string   `json:"jersey_size"`
	PantSize          string   `json:"pant_size"`
	StirrupSize       string   `json:"stirrup_size"`
	ShortSize         string   `json:"short_size"`
	PracticeShortSize string   `json:"practice_short_size"`
	AgeGroup          AgeGroup `json:"age_group" gorm:"index;not null"`
	IsTrusted         bool     `json:"is_trusted" gorm:"default:false"`
	College           *string  `json:"college"`
	UserID            *uint    `json:"user_id" gorm:"index"`
	AddressID         *uint    `json:"address_id"`
	TeamID            uint     `json:"team_id" gorm:"index;not null"`
}

// Parent mediates access for untrusted players.
type Parent struct {
	gorm.Model
	UserID    uint `json:"user_id" gorm:"index;not null"`
	AddressID uint `json:"address_id" gorm:"not null"`
}

// PlayerParent joins an untrusted player to one of their parents.
type PlayerParent struct {
	gorm.Model
	PlayerID uint `json:"player_id" gorm:"index;not null"`
	ParentID uint `json:"parent_id" gorm:"index;not null"`
}
