// Package sandbox serves a local stand-in for the remote users collection.
// It speaks the same wire format as jsonplaceholder: GET returns records with
// a full name and a nested company, while POST/PUT accept the local field
// shape and echo it back with the id.
package sandbox

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	um "user_management"
	"user_management/internal/logger"
	"user_management/internal/models"
	"user_management/internal/repository"

	"github.com/gin-gonic/gin"
)

// Handler exposes a UserStore as a REST collection.
type Handler struct {
	store repository.UserStore
	log   *logger.Logger
}

func NewHandler(store repository.UserStore, log *logger.Logger) *Handler {
	return &Handler{store: store, log: log}
}

// InitRoutes builds the sandbox router.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	users := router.Group("/users")
	{
		users.GET("", h.list)
		users.POST("", h.create)
		users.PUT("/:id", h.update)
		users.DELETE("/:id", h.remove)
	}
	return router
}

// userBody is the local shape accepted on POST and PUT.
type userBody struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

func (b userBody) fields() um.UserFields {
	return um.UserFields{
		FirstName:  b.FirstName,
		LastName:   b.LastName,
		Email:      b.Email,
		Department: b.Department,
	}
}

// toRemote renders a stored user in the remote record format.
func toRemote(u um.User) models.RemoteUser {
	id := u.ID
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	email := u.Email
	dept := u.Department
	return models.RemoteUser{
		ID:      &id,
		Name:    &name,
		Email:   &email,
		Company: &models.RemoteCompany{Name: &dept},
	}
}

func (h *Handler) fail(c *gin.Context, logKey string, err error) {
	code := http.StatusInternalServerError
	if errors.Is(err, repository.ErrNotFound) {
		code = http.StatusNotFound
	}
	if h.log != nil {
		h.log.Infow(logKey, "err", err, "status", code)
	}
	c.JSON(code, gin.H{"error": err.Error()})
}

func (h *Handler) list(c *gin.Context) {
	users, err := h.store.List(c.Request.Context())
	if err != nil {
		h.fail(c, "sandbox_list_failed", err)
		return
	}
	out := make([]models.RemoteUser, 0, len(users))
	for _, u := range users {
		out = append(out, toRemote(u))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) create(c *gin.Context) {
	var body userBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.store.Create(c.Request.Context(), body.fields())
	if err != nil {
		h.fail(c, "sandbox_create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (h *Handler) update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var body userBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// the path id is authoritative, whatever the body says
	u, err := h.store.Update(c.Request.Context(), body.fields().WithID(id))
	if err != nil {
		h.fail(c, "sandbox_update_failed", err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *Handler) remove(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "sandbox_delete_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// seedUsers mirrors the first records of the public collection.
var seedUsers = []um.UserFields{
	{FirstName: "Leanne", LastName: "Graham", Email: "Sincere@april.biz", Department: "Romaguera-Crona"},
	{FirstName: "Ervin", LastName: "Howell", Email: "Shanna@melissa.tv", Department: "Deckow-Crist"},
	{FirstName: "Clementine", LastName: "Bauch", Email: "Nathan@yesenia.net", Department: "Romaguera-Jacobson"},
	{FirstName: "Patricia", LastName: "Lebsack", Email: "Julianne.OConner@kory.org", Department: "Robel-Corkery"},
	{FirstName: "Madonna", Email: "madonna@example.com", Department: "Keebler LLC"},
}

// Seed fills an empty store with sample users. It reports how many were
// inserted; a non-empty store is left alone.
func Seed(ctx context.Context, store repository.UserStore) (int, error) {
	n, err := store.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	for i, f := range seedUsers {
		if _, err := store.Create(ctx, f); err != nil {
			return i, err
		}
	}
	return len(seedUsers), nil
}
