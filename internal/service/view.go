package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	um "user_management"
	"user_management/internal/logger"
)

// User-facing messages, one pair per action.
const (
	msgFetchFailed    = "Failed to fetch users"
	msgCreated        = "User created successfully"
	msgCreateFailed   = "Failed to create user"
	msgUpdated        = "User updated successfully"
	msgUpdateFailed   = "Failed to update user"
	msgDeleted        = "User deleted successfully"
	msgDeleteFailed   = "Failed to delete user"
	DeletePrompt      = "Are you sure you want to delete this user?"
	defaultConfirmTTL = 2 * time.Minute
)

// ConfirmFunc is the blocking yes/no prompt consulted before a delete.
type ConfirmFunc func(ctx context.Context, u um.User, prompt string) bool

type pendingDelete struct {
	userID    int
	expiresAt time.Time
}

// UserView owns the in-memory user list and the form state. All mutation goes
// through its methods. The lock is never held across a remote call: local
// state changes only after the call has succeeded.
type UserView struct {
	api        UserAPI
	notifier   *Notifier
	log        *logger.Logger
	confirmTTL time.Duration
	now        func() time.Time

	mu       sync.Mutex
	users    []um.User
	selected *um.User
	formOpen bool
	loading  bool
	pending  map[string]pendingDelete
}

// NewUserView returns a view in its initial state: loading, form closed.
func NewUserView(api UserAPI, notifier *Notifier, log *logger.Logger, confirmTTL time.Duration) *UserView {
	if notifier == nil {
		notifier = NewNotifier(0)
	}
	if confirmTTL <= 0 {
		confirmTTL = defaultConfirmTTL
	}
	return &UserView{
		api:        api,
		notifier:   notifier,
		log:        log,
		confirmTTL: confirmTTL,
		now:        time.Now,
		users:      []um.User{},
		loading:    true,
		pending:    make(map[string]pendingDelete),
	}
}

// Load replaces the list with the remote collection. On failure the list is
// left as it was. Loading ends either way.
func (v *UserView) Load(ctx context.Context) (State, error) {
	users, err := v.api.ListUsers(ctx)
	if err == nil {
		err = checkUniqueIDs(users)
	}

	v.mu.Lock()
	v.loading = false
	if err == nil {
		v.users = append(make([]um.User, 0, len(users)), users...)
	}
	st := v.commitLocked()
	v.mu.Unlock()

	if err != nil {
		return st, v.reportFailure("users_load_failed", msgFetchFailed, err)
	}
	if v.log != nil {
		v.log.Infow("users_loaded", "count", len(st.Users))
	}
	return st, nil
}

// checkUniqueIDs rejects a list in which two users share an id.
func checkUniqueIDs(users []um.User) error {
	seen := make(map[int]struct{}, len(users))
	for _, u := range users {
		if _, dup := seen[u.ID]; dup {
			return fmt.Errorf("%w: id %d", ErrDuplicateID, u.ID)
		}
		seen[u.ID] = struct{}{}
	}
	return nil
}

// Snapshot returns a copy of the current state.
func (v *UserView) Snapshot() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

// OpenCreateForm opens an empty form.
func (v *UserView) OpenCreateForm() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selected = nil
	v.formOpen = true
	return v.commitLocked()
}

// OpenEditForm opens the form on the user with the given id.
func (v *UserView) OpenEditForm(id int) (State, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	i := v.indexLocked(id)
	if i < 0 {
		return v.snapshotLocked(), ErrUserNotFound
	}
	u := v.users[i]
	v.selected = &u
	v.formOpen = true
	return v.commitLocked(), nil
}

// CloseForm discards the form. The user list is never touched.
func (v *UserView) CloseForm() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selected = nil
	v.formOpen = false
	return v.commitLocked()
}

// Submit saves the form. With no user selected it creates, otherwise it
// updates the selected user.
func (v *UserView) Submit(ctx context.Context, fields um.UserFields) (State, error) {
	v.mu.Lock()
	if !v.formOpen {
		st := v.snapshotLocked()
		v.mu.Unlock()
		return st, ErrFormClosed
	}
	var selected *um.User
	if v.selected != nil {
		u := *v.selected
		selected = &u
	}
	v.mu.Unlock()

	fields = fields.Trimmed()
	if missing := fields.Missing(); len(missing) > 0 {
		return v.Snapshot(), &ValidationError{Fields: missing}
	}

	if selected == nil {
		return v.create(ctx, fields)
	}
	return v.update(ctx, selected.ID, fields)
}

func (v *UserView) create(ctx context.Context, fields um.UserFields) (State, error) {
	created, err := v.api.CreateUser(ctx, fields)
	if err != nil {
		return v.Snapshot(), v.reportFailure("users_create_failed", msgCreateFailed, err)
	}

	v.mu.Lock()
	if v.indexLocked(created.ID) >= 0 {
		st := v.snapshotLocked()
		v.mu.Unlock()
		return st, v.reportFailure("users_create_failed", msgCreateFailed, ErrDuplicateID, "id", created.ID)
	}
	v.users = append(v.users, created)
	v.formOpen = false
	st := v.commitLocked()
	v.mu.Unlock()

	v.notifier.Notify(LevelSuccess, msgCreated)
	return st, nil
}

// update saves fields under id. The stored record always keeps id, even if
// the remote echoes a different one.
func (v *UserView) update(ctx context.Context, id int, fields um.UserFields) (State, error) {
	updated, err := v.api.UpdateUser(ctx, fields.WithID(id))
	if err != nil {
		return v.Snapshot(), v.reportFailure("users_update_failed", msgUpdateFailed, err, "id", id)
	}
	if updated.ID != id {
		if v.log != nil {
			v.log.Warnw("users_update_id_mismatch", "selected_id", id, "response_id", updated.ID)
		}
		updated.ID = id
	}

	v.mu.Lock()
	if i := v.indexLocked(id); i >= 0 {
		v.users[i] = updated
	} else if v.log != nil {
		v.log.Warnw("users_update_target_gone", "id", id)
	}
	v.selected = nil
	v.formOpen = false
	st := v.commitLocked()
	v.mu.Unlock()

	v.notifier.Notify(LevelSuccess, msgUpdated)
	return st, nil
}

// Delete removes the user after confirm agrees. A declined (or missing)
// confirmation makes no remote call and changes nothing.
func (v *UserView) Delete(ctx context.Context, id int, confirm ConfirmFunc) (State, error) {
	v.mu.Lock()
	i := v.indexLocked(id)
	if i < 0 {
		st := v.snapshotLocked()
		v.mu.Unlock()
		return st, ErrUserNotFound
	}
	u := v.users[i]
	v.mu.Unlock()

	if confirm == nil || !confirm(ctx, u, DeletePrompt) {
		if v.log != nil {
			v.log.Infow("users_delete_declined", "id", id)
		}
		return v.Snapshot(), nil
	}

	if err := v.api.DeleteUser(ctx, id); err != nil {
		return v.Snapshot(), v.reportFailure("users_delete_failed", msgDeleteFailed, err, "id", id)
	}

	v.mu.Lock()
	if i := v.indexLocked(id); i >= 0 {
		v.users = slices.Delete(v.users, i, i+1)
	}
	st := v.commitLocked()
	v.mu.Unlock()

	v.notifier.Notify(LevelSuccess, msgDeleted)
	return st, nil
}

// RequestDelete records the intent to delete id and returns the token that
// must be answered through ConfirmDelete.
func (v *UserView) RequestDelete(id int) (Confirmation, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.indexLocked(id) < 0 {
		return Confirmation{}, ErrUserNotFound
	}

	now := v.now()
	for tok, p := range v.pending {
		if !now.Before(p.expiresAt) {
			delete(v.pending, tok)
		}
	}

	c := Confirmation{
		Token:     uuid.NewString(),
		UserID:    id,
		Prompt:    DeletePrompt,
		ExpiresAt: now.Add(v.confirmTTL).UTC(),
	}
	v.pending[c.Token] = pendingDelete{userID: id, expiresAt: c.ExpiresAt}
	return c, nil
}

// ConfirmDelete answers a pending delete. The token is consumed whatever the
// answer.
func (v *UserView) ConfirmDelete(ctx context.Context, token string, accept bool) (State, error) {
	v.mu.Lock()
	p, ok := v.pending[token]
	delete(v.pending, token)
	if ok && !v.now().Before(p.expiresAt) {
		ok = false
	}
	if !ok {
		st := v.snapshotLocked()
		v.mu.Unlock()
		return st, ErrConfirmationNotFound
	}
	v.mu.Unlock()

	return v.Delete(ctx, p.userID, func(context.Context, um.User, string) bool { return accept })
}

func (v *UserView) reportFailure(logKey, message string, err error, kv ...any) error {
	if v.log != nil {
		v.log.Infow(logKey, append([]any{"err", err}, kv...)...)
	}
	v.notifier.Notify(LevelError, message)
	return err
}

func (v *UserView) indexLocked(id int) int {
	return slices.IndexFunc(v.users, func(u um.User) bool { return u.ID == id })
}

// commitLocked snapshots the state and publishes it. Publishing under the
// lock keeps the event stream in transition order.
func (v *UserView) commitLocked() State {
	st := v.snapshotLocked()
	v.notifier.Publish(Event{Type: EventState, State: &st})
	return st
}

func (v *UserView) snapshotLocked() State {
	st := State{
		Users:    append(make([]um.User, 0, len(v.users)), v.users...),
		FormOpen: v.formOpen,
		Loading:  v.loading,
		FormMode: FormClosed,
	}
	if v.selected != nil {
		u := *v.selected
		st.SelectedUser = &u
	}
	if v.formOpen {
		st.FormMode = FormCreate
		if v.selected != nil {
			st.FormMode = FormEdit
		}
	}
	return st
}
