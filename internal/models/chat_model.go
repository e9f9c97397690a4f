// chat & notification models
package models

import (
	"time"

	"gorm.io/gorm"
)

// Chat has a title; membership lives in UserChat rows. Team chats derive
// membership from team role eligibility, random chats sample all users.
type Chat struct {
	gorm.Model
	Title string `json:"title" gorm:"not null"`
}

// UserChat joins a user into a chat.
type UserChat struct {
	gorm.Model
	ChatID uint `json:"chat_id" gorm:"index;not null"`
	UserID uint `json:"user_id" gorm:"index;not null"`
}

// Message is one chat message, timestamped between chat creation and now.
type Message struct {
	gorm.Model
	ChatID  uint      `json:"chat_id" gorm:"index;not null"`
	UserID  uint      `json:"user_id" gorm:"index;not null"`
	Content string    `json:"content" gorm:"not null"`
	SentAt  time.Time `json:"sent_at" gorm:"not null"`
}

// Notification is broadcast content; per-user read state lives in
// UserNotification rows.
type Notification struct {
	gorm.Model
	Title string `json:"title" gorm:"not null"`
	Body  string `json:"body"`
	Image string `json:"image"`
}

// UserNotification pairs a notification with one recipient and a read flag.
type UserNotification struct {
	gorm.Model
	NotificationID uint `json:"notification_id" gorm:"index;not null"`
	UserID         uint `json:"user_id" gorm:"index;not null"`
	Read           bool `json:"read" gorm:"default:false"`
}
