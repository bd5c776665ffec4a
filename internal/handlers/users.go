package handlers

import (
	"errors"
	"net/http"
	"strconv"

	um "user_management"
	"user_management/internal/apiclient"
	"user_management/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	errInvalidID       = "invalid user id"
	errInvalidBodyPref = "invalid body: "
)

// SubmitRequest is the form payload. It is exported for swagger docs.
type SubmitRequest struct {
	FirstName  string `json:"firstName" example:"Bo"`
	LastName   string `json:"lastName" example:"Li"`
	Email      string `json:"email" example:"bo@x.com"`
	Department string `json:"department" example:"Eng"`
}

// ConfirmRequest answers a pending delete.
type ConfirmRequest struct {
	Confirm *bool `json:"confirm" binding:"required" example:"true"`
}

// statusFor maps view-controller errors onto HTTP codes.
func statusFor(err error) int {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrConfirmationNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrFormClosed):
		return http.StatusConflict
	case apiclient.IsFetchError(err), errors.Is(err, service.ErrDuplicateID):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {"error", "state"} and logs the failure.
func (h *Handler) respondError(c *gin.Context, logKey string, err error, st service.State, kv ...interface{}) {
	code := statusFor(err)
	if h.log != nil {
		fields := append([]interface{}{"err", err, "status", code}, kv...)
		h.log.Infow(logKey, fields...)
	}
	c.JSON(code, gin.H{"error": err.Error(), "state": st})
}

func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidID})
		return 0, false
	}
	return id, true
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      Current state
// @Tags         state
// @Produce      json
// @Success      200  {object}  service.State
// @Router       /api/v1/state [get]
func (h *Handler) getState(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Users.Snapshot())
}

// @Summary      Recent notifications
// @Tags         state
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, notifications"
// @Router       /api/v1/notifications [get]
func (h *Handler) getNotifications(c *gin.Context) {
	notes := h.services.Notifications.Recent()
	c.JSON(http.StatusOK, gin.H{
		"count":         len(notes),
		"notifications": notes,
	})
}

// @Summary      Reload users from the remote collection
// @Tags         users
// @Produce      json
// @Success      200  {object}  service.State
// @Failure      502  {object}  map[string]interface{}
// @Router       /api/v1/users/reload [post]
func (h *Handler) reloadUsers(c *gin.Context) {
	st, err := h.services.Users.Load(c.Request.Context())
	if err != nil {
		h.respondError(c, "users_reload_failed", err, st)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Open the create form
// @Tags         form
// @Produce      json
// @Success      200  {object}  service.State
// @Router       /api/v1/form/create [post]
func (h *Handler) openCreateForm(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Users.OpenCreateForm())
}

// @Summary      Open the edit form for a user
// @Tags         form
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  service.State
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/v1/form/edit/{id} [post]
func (h *Handler) openEditForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	st, err := h.services.Users.OpenEditForm(id)
	if err != nil {
		h.respondError(c, "form_open_edit_failed", err, st, "id", id)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Submit the open form
// @Description  Creates a user when no user is selected, otherwise updates the selected one.
// @Tags         form
// @Accept       json
// @Produce      json
// @Param        body  body      SubmitRequest  true  "User fields"
// @Success      200   {object}  service.State
// @Failure      400   {object}  map[string]interface{}
// @Failure      409   {object}  map[string]interface{}
// @Failure      502   {object}  map[string]interface{}
// @Router       /api/v1/form/submit [post]
func (h *Handler) submitForm(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	st, err := h.services.Users.Submit(c.Request.Context(), um.UserFields{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Department: req.Department,
	})
	if err != nil {
		h.respondError(c, "form_submit_failed", err, st)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Close the form, discarding input
// @Tags         form
// @Produce      json
// @Success      200  {object}  service.State
// @Router       /api/v1/form/close [post]
func (h *Handler) closeForm(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Users.CloseForm())
}

// @Summary      Ask to delete a user
// @Description  Returns a single-use confirmation token. Nothing is deleted until it is confirmed.
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      202  {object}  service.Confirmation
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/v1/users/{id}/delete [post]
func (h *Handler) requestDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	conf, err := h.services.Users.RequestDelete(id)
	if err != nil {
		h.respondError(c, "users_request_delete_failed", err, h.services.Users.Snapshot(), "id", id)
		return
	}
	c.JSON(http.StatusAccepted, conf)
}

// @Summary      Answer a delete confirmation
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        token  path      string          true  "Confirmation token"
// @Param        body   body      ConfirmRequest  true  "Answer"
// @Success      200    {object}  map[string]interface{}  "deleted, state"
// @Failure      400    {object}  map[string]string
// @Failure      404    {object}  map[string]interface{}
// @Failure      502    {object}  map[string]interface{}
// @Router       /api/v1/confirmations/{token} [post]
func (h *Handler) confirmDelete(c *gin.Context) {
	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	token := c.Param("token")
	st, err := h.services.Users.ConfirmDelete(c.Request.Context(), token, *req.Confirm)
	if err != nil {
		h.respondError(c, "users_confirm_delete_failed", err, st)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": *req.Confirm, "state": st})
}
