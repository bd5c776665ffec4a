package service

import (
	"time"

	um "user_management"
)

// FormMode tells which editing form, if any, is visible.
type FormMode string

const (
	FormClosed FormMode = "closed"
	FormCreate FormMode = "create"
	FormEdit   FormMode = "edit"
)

// State is a copy of the application state at one instant.
type State struct {
	Users        []um.User `json:"users"`
	SelectedUser *um.User  `json:"selectedUser,omitempty"` // nil means create mode
	FormOpen     bool      `json:"formOpen"`
	FormMode     FormMode  `json:"formMode"`
	Loading      bool      `json:"loading"` // true only until the initial load completes
}

// Notification levels.
const (
	LevelSuccess = "success"
	LevelError   = "error"
)

// Notification is a transient, user-facing message.
type Notification struct {
	ID        string    `json:"id"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Confirmation is a pending delete intent. It must be answered with its
// token before it expires; each token can be used once.
type Confirmation struct {
	Token     string    `json:"token"`
	UserID    int       `json:"userId"`
	Prompt    string    `json:"prompt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Event types pushed to subscribers.
const (
	EventState        = "state"
	EventNotification = "notification"
)

// Event is either a state snapshot or a notification.
type Event struct {
	Type         string        `json:"type"`
	State        *State        `json:"state,omitempty"`
	Notification *Notification `json:"notification,omitempty"`
}
