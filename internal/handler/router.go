package handler

import (
	"net/http"

	"kantine-order-api/internal/handler/api"
	"kantine-order-api/internal/handler/middleware"
	"kantine-order-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	roomHandler *api.RoomHandler,
	productHandler *api.ProductHandler,
	optionHandler *api.OptionHandler,
	orderHandler *api.OrderHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, roomHandler, productHandler, optionHandler, orderHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	roomHandler *api.RoomHandler,
	productHandler *api.ProductHandler,
	optionHandler *api.OptionHandler,
	orderHandler *api.OrderHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addCRUDRoutes(apiGroup.Group("/rooms"), roomHandler.Create, roomHandler.Get, roomHandler.List, roomHandler.Update, roomHandler.Delete)
		addCRUDRoutes(apiGroup.Group("/products"), productHandler.Create, productHandler.Get, productHandler.List, productHandler.Update, productHandler.Delete)
		addCRUDRoutes(apiGroup.Group("/options"), optionHandler.Create, optionHandler.Get, optionHandler.List, optionHandler.Update, optionHandler.Delete)
		addCRUDRoutes(apiGroup.Group("/orders"), orderHandler.Create, orderHandler.Get, orderHandler.List, orderHandler.Update, orderHandler.Delete)
	}
}

func addCRUDRoutes(g *gin.RouterGroup, create, get, list, update, del gin.HandlerFunc) {
	addRoutes(g, []route{
		{Method: http.MethodPost, Path: "", Handler: create},
		{Method: http.MethodGet, Path: "", Handler: list},
		{Method: http.MethodGet, Path: "/:id", Handler: get},
		{Method: http.MethodPatch, Path: "/:id", Handler: update},
		{Method: http.MethodDelete, Path: "/:id", Handler: del},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
