package handlers

import (
	"user_management/internal/logger"
	"user_management/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "user_management/docs"
)

// Handler wires the HTTP layer to the view controller and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	h.registerAPIRoutes(router)

	// state and notification stream, same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.GET("/state", h.getState)
		api.GET("/notifications", h.getNotifications)
		h.registerUserRoutes(api)
		h.registerFormRoutes(api)
	}
}

func (h *Handler) registerUserRoutes(api *gin.RouterGroup) {
	users := api.Group("/users")
	{
		users.POST("/reload", h.reloadUsers)
		users.POST("/:id/delete", h.requestDelete)
	}
	api.POST("/confirmations/:token", h.confirmDelete)
}

func (h *Handler) registerFormRoutes(api *gin.RouterGroup) {
	form := api.Group("/form")
	{
		form.POST("/create", h.openCreateForm)
		form.POST("/edit/:id", h.openEditForm)
		// Body example: {"firstName":"Bo","lastName":"Li","email":"bo@x.com","department":"Eng"}
		form.POST("/submit", h.submitForm)
		form.POST("/close", h.closeForm)
	}
}
