package router

import (
	"net/http"
	"time"

	"github.com/Andr3sPonc3M/AskWorld/internal/auth"
	"github.com/Andr3sPonc3M/AskWorld/internal/config"
	"github.com/Andr3sPonc3M/AskWorld/internal/handler"
	"github.com/Andr3sPonc3M/AskWorld/internal/middleware"
	"github.com/Andr3sPonc3M/AskWorld/internal/models"
	"github.com/Andr3sPonc3M/AskWorld/internal/store"
	"github.com/Andr3sPonc3M/AskWorld/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// request bodies larger than this are rejected
const maxBodyBytes = 10 << 10

// SetupRouter wires the Gin engine: middleware, auth endpoints, protected
// group and the admin group.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.RequestLog())

	origins := cfg.CORS.Origins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
		}
		c.Next()
	})

	users := store.NewUserStore(db)
	hasher := auth.NewHasher(cfg.Security.BcryptCost, cfg.Security.HashWorkers)
	tokens := auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer,
		time.Duration(cfg.JWT.ExpireHours)*time.Hour)
	service := auth.NewService(users, hasher, tokens)

	authHandler := handler.NewAuthHandler(service)
	adminHandler := handler.NewAdminHandler(users)

	// ====== API ======
	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		util.Success(c, http.StatusOK, util.Response{
			"message":   "server is up",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/verify", middleware.OptionalAuth(tokens, users), authHandler.Verify)

	protected := api.Group("")
	protected.Use(middleware.RequireAuth(tokens, users))

	protected.GET("/auth/me", authHandler.Me)
	protected.POST("/auth/logout", authHandler.Logout)

	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRoles(models.RoleAdministrator))
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/users/export", adminHandler.ExportUsersXLSX)

	r.NoRoute(func(c *gin.Context) {
		util.Error(c, http.StatusNotFound, "route not found")
	})

	return r
}
