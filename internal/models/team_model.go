// team models
package models

import "gorm.io/gorm"

// Team represents one roster in a single age division and region.
type Team struct {
	gorm.Model
	Name        string   `json:"name" gorm:"not null"`
	Slug        string   `json:"slug" gorm:"index"`
	AgeGroup    AgeGroup `json:"age_group" gorm:"index;not null"`
	Region      Region   `json:"region" gorm:"index;not null"`
	HeadCoachID *uint    `json:"head_coach_id"`
}

// Coach covers both plain and regional coaches; regional coaches carry the
// region they oversee.
type Coach struct {
	gorm.Model
	UserID uint    `json:"user_id" gorm:"index;not null"`
	Region *Region `json:"region"`
}

// Regional reports whether the coach is the regional variant.
func (c *Coach) Regional() bool { return c.Region != nil }

// TeamCoach joins a coach to a team. Created in the second wiring pass, once
// the coach ids exist.
type TeamCoach struct {
	gorm.Model
	TeamID  uint `json:"team_id" gorm:"index;not null"`
	CoachID uint `json:"coach_id" gorm:"index;not null"`
}

// Trophy is a team accolade.
type Trophy struct {
	gorm.Model
	TeamID uint   `json:"team_id" gorm:"index;not null"`
	Title  string `json:"title" gorm:"not null"`
	Year   string `json:"year"`
}
