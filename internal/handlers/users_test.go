package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	um "user_management"
	"user_management/internal/apiclient"
	"user_management/internal/service"
)

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		for k, vv := range jsonHeader() {
			for _, v := range vv {
				req.Header.Add(k, v)
			}
		}
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeState(t *testing.T, w *httptest.ResponseRecorder) service.State {
	t.Helper()
	var st service.State
	if err := json.Unmarshal(w.Body.Bytes(), &st); err != nil {
		t.Fatalf("unmarshal state: %v (body=%s)", err, w.Body.String())
	}
	return st
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&service.Service{})
	w := do(t, r, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("health status=%d", w.Code)
	}
}

func TestStateAndFormRoutes(t *testing.T) {
	users := &mockUsers{state: service.State{
		Users:    []um.User{{ID: 5, FirstName: "A", Department: "Eng"}},
		FormOpen: true,
		FormMode: service.FormCreate,
	}}
	r := newTestRouter(&service.Service{Users: users, Notifications: newMockNotifications()})

	w := do(t, r, http.MethodGet, "/api/v1/state", "")
	if w.Code != http.StatusOK {
		t.Fatalf("state status=%d body=%s", w.Code, w.Body.String())
	}
	if st := decodeState(t, w); len(st.Users) != 1 || st.Users[0].ID != 5 {
		t.Fatalf("unexpected state: %+v", st)
	}

	w = do(t, r, http.MethodPost, "/api/v1/form/create", "")
	if w.Code != http.StatusOK || users.openCreateCalls != 1 {
		t.Fatalf("create form status=%d calls=%d", w.Code, users.openCreateCalls)
	}

	w = do(t, r, http.MethodPost, "/api/v1/form/edit/5", "")
	if w.Code != http.StatusOK || users.lastEditID != 5 {
		t.Fatalf("edit form status=%d id=%d", w.Code, users.lastEditID)
	}

	w = do(t, r, http.MethodPost, "/api/v1/form/close", "")
	if w.Code != http.StatusOK || users.closeCalls != 1 {
		t.Fatalf("close form status=%d calls=%d", w.Code, users.closeCalls)
	}
}

func TestOpenEditForm_BadAndUnknownID(t *testing.T) {
	users := &mockUsers{editErr: service.ErrUserNotFound}
	r := newTestRouter(&service.Service{Users: users})

	if w := do(t, r, http.MethodPost, "/api/v1/form/edit/abc", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", w.Code)
	}
	if w := do(t, r, http.MethodPost, "/api/v1/form/edit/0", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero id, got %d", w.Code)
	}
	if w := do(t, r, http.MethodPost, "/api/v1/form/edit/9", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", w.Code)
	}
}

func TestSubmitForm(t *testing.T) {
	users := &mockUsers{state: service.State{Users: []um.User{{ID: 101, FirstName: "Bo"}}}}
	r := newTestRouter(&service.Service{Users: users})

	w := do(t, r, http.MethodPost, "/api/v1/form/submit",
		`{"firstName":"Bo","lastName":"Li","email":"bo@x.com","department":"Eng"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("submit status=%d body=%s", w.Code, w.Body.String())
	}
	want := um.UserFields{FirstName: "Bo", LastName: "Li", Email: "bo@x.com", Department: "Eng"}
	if users.lastSubmit != want {
		t.Fatalf("submitted %+v, want %+v", users.lastSubmit, want)
	}

	// malformed body never reaches the service
	w = do(t, r, http.MethodPost, "/api/v1/form/submit", `{"firstName":1}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad body, got %d", w.Code)
	}
	if users.submitCalls != 1 {
		t.Fatalf("submit calls=%d", users.submitCalls)
	}
}

func TestSubmitForm_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &service.ValidationError{Fields: []string{"email"}}, http.StatusBadRequest},
		{"form closed", service.ErrFormClosed, http.StatusConflict},
		{"remote failure", &apiclient.FetchError{Op: apiclient.OpCreateUser, Err: errors.New("boom")}, http.StatusBadGateway},
		{"duplicate id", service.ErrDuplicateID, http.StatusBadGateway},
		{"unknown", errors.New("???"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			users := &mockUsers{submitErr: tc.err, state: service.State{FormOpen: true}}
			r := newTestRouter(&service.Service{Users: users})

			w := do(t, r, http.MethodPost, "/api/v1/form/submit", `{"firstName":"Bo"}`)
			if w.Code != tc.want {
				t.Fatalf("status=%d, want %d", w.Code, tc.want)
			}
			var body struct {
				Error string        `json:"error"`
				State service.State `json:"state"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if body.Error == "" || !body.State.FormOpen {
				t.Fatalf("error body missing error or state: %s", w.Body.String())
			}
		})
	}
}

func TestReloadUsers(t *testing.T) {
	users := &mockUsers{loadErr: &apiclient.FetchError{Op: apiclient.OpListUsers, Err: errors.New("down")}}
	r := newTestRouter(&service.Service{Users: users})

	w := do(t, r, http.MethodPost, "/api/v1/users/reload", "")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
	if users.loadCalls != 1 {
		t.Fatalf("load calls=%d", users.loadCalls)
	}
}

func TestTwoPhaseDeleteRoutes(t *testing.T) {
	users := &mockUsers{confirmResp: service.Confirmation{Token: "tok-1", UserID: 3, Prompt: service.DeletePrompt}}
	r := newTestRouter(&service.Service{Users: users})

	w := do(t, r, http.MethodPost, "/api/v1/users/3/delete", "")
	if w.Code != http.StatusAccepted {
		t.Fatalf("request delete status=%d body=%s", w.Code, w.Body.String())
	}
	var conf service.Confirmation
	if err := json.Unmarshal(w.Body.Bytes(), &conf); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if conf.Token != "tok-1" || conf.Prompt != service.DeletePrompt {
		t.Fatalf("unexpected confirmation: %+v", conf)
	}

	for _, accept := range []bool{false, true} {
		w = do(t, r, http.MethodPost, "/api/v1/confirmations/tok-1", fmt.Sprintf(`{"confirm":%t}`, accept))
		if w.Code != http.StatusOK {
			t.Fatalf("confirm(%t) status=%d body=%s", accept, w.Code, w.Body.String())
		}
		if users.lastToken != "tok-1" || users.lastAccept != accept {
			t.Fatalf("confirm got token=%q accept=%t", users.lastToken, users.lastAccept)
		}
	}

	// an answer is required
	w = do(t, r, http.MethodPost, "/api/v1/confirmations/tok-1", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without confirm, got %d", w.Code)
	}
	if users.confirmCalls != 2 {
		t.Fatalf("confirm calls=%d", users.confirmCalls)
	}
}

func TestTwoPhaseDelete_Errors(t *testing.T) {
	users := &mockUsers{
		requestErr: service.ErrUserNotFound,
		confirmErr: service.ErrConfirmationNotFound,
	}
	r := newTestRouter(&service.Service{Users: users})

	if w := do(t, r, http.MethodPost, "/api/v1/users/3/delete", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if w := do(t, r, http.MethodPost, "/api/v1/confirmations/stale", `{"confirm":true}`); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGetNotifications(t *testing.T) {
	notes := newMockNotifications()
	notes.recent = []service.Notification{{ID: "n1", Level: service.LevelError, Message: "Failed to delete user"}}
	r := newTestRouter(&service.Service{Users: &mockUsers{}, Notifications: notes})

	w := do(t, r, http.MethodGet, "/api/v1/notifications", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var body struct {
		Count         int                    `json:"count"`
		Notifications []service.Notification `json:"notifications"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Count != 1 || body.Notifications[0].Message != "Failed to delete user" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestSwaggerDocServed(t *testing.T) {
	r := newTestRouter(&service.Service{Users: &mockUsers{}})
	w := do(t, r, http.MethodGet, "/swagger/doc.json", "")
	if w.Code != http.StatusOK {
		t.Fatalf("swagger status=%d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("/api/v1/form/submit")) {
		t.Fatalf("swagger doc missing submit route: %s", w.Body.String())
	}
}
