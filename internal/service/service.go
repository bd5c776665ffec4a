package service

import (
	"context"
	"time"

	um "user_management"
	"user_management/internal/logger"
)

// UserAPI is the remote collection as the view controller sees it.
// *apiclient.Client satisfies it.
type UserAPI interface {
	ListUsers(ctx context.Context) ([]um.User, error)
	CreateUser(ctx context.Context, data um.UserFields) (um.User, error)
	UpdateUser(ctx context.Context, data um.User) (um.User, error)
	DeleteUser(ctx context.Context, id int) error
}

// Users exposes the view-controller transitions.
type Users interface {
	Load(ctx context.Context) (State, error)
	Snapshot() State
	OpenCreateForm() State
	OpenEditForm(id int) (State, error)
	Submit(ctx context.Context, fields um.UserFields) (State, error)
	CloseForm() State
	Delete(ctx context.Context, id int, confirm ConfirmFunc) (State, error)
	RequestDelete(id int) (Confirmation, error)
	ConfirmDelete(ctx context.Context, token string, accept bool) (State, error)
}

// Notifications exposes the toast feed and the event stream.
type Notifications interface {
	Recent() []Notification
	Subscribe() (<-chan Event, func())
}

// Service aggregates the sub-services used by the HTTP layer.
type Service struct {
	Users
	Notifications
}

// Options tunes the view controller. Zero values fall back to defaults.
type Options struct {
	ConfirmTTL        time.Duration
	NotificationLimit int
}

// NewService wires the remote client into a view controller and its notifier.
func NewService(api UserAPI, log *logger.Logger, opts Options) *Service {
	notifier := NewNotifier(opts.NotificationLimit)
	return &Service{
		Users:         NewUserView(api, notifier, log, opts.ConfirmTTL),
		Notifications: notifier,
	}
}
