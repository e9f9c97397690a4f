// event & tournament models
package models

import (
	"time"

	"gorm.io/gorm"
)

// Tournament is the day-scale container a TOURNAMENT event attaches to.
type Tournament struct {
	gorm.Model
	Title string `json:"title" gorm:"not null"`
	Body  string `json:"body"`
	Image string `json:"image"`
}

// Event is a calendar entry. Practice and global events are hour-scale and
// unattached; tournament events are day-scale and reference a tournament.
type Event struct {
	gorm.Model
	EventType    EventType `json:"event_type" gorm:"index;not null"`
	Start        time.Time `json:"start" gorm:"not null"`
	End          time.Time `json:"end" gorm:"not null"`
	TournamentID *uint     `json:"tournament_id" gorm:"index"`
}

// EventAttendance is one roster member's RSVP for one event. Exactly one of
// PlayerID/CoachID is set; UserID is set when the member holds an account
// (untrusted players do not).
type EventAttendance struct {
	gorm.Model
	EventID  uint             `json:"event_id" gorm:"index;not null"`
	PlayerID *uint            `json:"player_id" gorm:"index"`
	CoachID  *uint            `json:"coach_id" gorm:"index"`
	UserID   *uint            `json:"user_id" gorm:"index"`
	Status   AttendanceStatus `json:"status" gorm:"default:'PENDING'"`
}
