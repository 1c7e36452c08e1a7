package handlers

import (
	"smartir_service/internal/logger"
	"smartir_service/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
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
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// Job progress stream (HTTP upgrade) — same port
	router.GET("/ws", h.wsJobProgress)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		h.registerConvertRoutes(api)
		h.registerDeviceRoutes(api)
		h.registerJobRoutes(api)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerConvertRoutes(api *gin.RouterGroup) {
	convert := api.Group("/convert")
	{
		convert.POST("/pronto", h.convertPronto)
		convert.POST("/raw", h.convertRaw)
	}
}

func (h *Handler) registerDeviceRoutes(api *gin.RouterGroup) {
	devices := api.Group("/devices")
	{
		devices.POST("", h.storeDevice)
		devices.GET("", h.listDevices)
		devices.GET("/index", h.deviceIndex)
		devices.GET("/:id", h.getDevice)
	}
	api.POST("/validate", h.validateDescriptor)
}

func (h *Handler) registerJobRoutes(api *gin.RouterGroup) {
	jobs := api.Group("/jobs")
	{
		jobs.POST("", h.startJob)
		jobs.GET("/:id", h.getJob)
		jobs.DELETE("/:id", h.cancelJob)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("/", h.getLogs)
	}
}
