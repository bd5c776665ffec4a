package handlers

import (
	"context"
	"net/http"
	"sync"

	um "user_management"
	"user_management/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockUsers struct {
	state service.State

	loadErr     error
	editErr     error
	submitErr   error
	requestErr  error
	confirmErr  error
	confirmResp service.Confirmation

	lastEditID      int
	lastSubmit      um.UserFields
	lastToken       string
	lastAccept      bool
	loadCalls       int
	openCreateCalls int
	closeCalls      int
	submitCalls     int
	confirmCalls    int
}

func (m *mockUsers) Load(ctx context.Context) (service.State, error) {
	m.loadCalls++
	return m.state, m.loadErr
}
func (m *mockUsers) Snapshot() service.State { return m.state }
func (m *mockUsers) OpenCreateForm() service.State {
	m.openCreateCalls++
	return m.state
}
func (m *mockUsers) OpenEditForm(id int) (service.State, error) {
	m.lastEditID = id
	return m.state, m.editErr
}
func (m *mockUsers) Submit(ctx context.Context, f um.UserFields) (service.State, error) {
	m.submitCalls++
	m.lastSubmit = f
	return m.state, m.submitErr
}
func (m *mockUsers) CloseForm() service.State {
	m.closeCalls++
	return m.state
}
func (m *mockUsers) Delete(ctx context.Context, id int, confirm service.ConfirmFunc) (service.State, error) {
	return m.state, nil
}
func (m *mockUsers) RequestDelete(id int) (service.Confirmation, error) {
	return m.confirmResp, m.requestErr
}
func (m *mockUsers) ConfirmDelete(ctx context.Context, token string, accept bool) (service.State, error) {
	m.confirmCalls++
	m.lastToken = token
	m.lastAccept = accept
	return m.state, m.confirmErr
}

type mockNotifications struct {
	mu     sync.Mutex
	recent []service.Notification
	ch     chan service.Event
}

func newMockNotifications() *mockNotifications {
	return &mockNotifications{ch: make(chan service.Event, 8)}
}

func (m *mockNotifications) Recent() []service.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.recent
}
func (m *mockNotifications) Subscribe() (<-chan service.Event, func()) {
	return m.ch, func() {}
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil)
	return h.InitRoutes()
}

func jsonHeader() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	return h
}
