// internal/models/base.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringSlice is a JSONB-backed string list column (used for a user's role set).
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan unmarshals a JSONB column into the slice.
func (s *StringSlice) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("StringSlice: expected []byte, got %T", src)
	}
	return json.Unmarshal(b, s)
}

// Contains reports whether v is present in the slice.
func (s StringSlice) Contains(v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}

// All returns one zero value per model, in FK-safe creation order, for
// AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&User{}, &Admin{}, &Fan{}, &Address{},
		&Team{}, &Coach{}, &TeamCoach{}, &Trophy{},
		&Player{}, &Parent{}, &PlayerParent{},
		&Tournament{}, &Event{}, &EventAttendance{},
		&Chat{}, &UserChat{}, &Message{},
		&Notification{}, &UserNotification{},
	}
}
