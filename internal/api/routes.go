package api

import (
	"github.com/gin-gonic/gin"

	"github.com/mjal-at/file-service/internal/api/handlers"
	"github.com/mjal-at/file-service/internal/api/middleware"
)

func corsMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	}
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(h *handlers.Handler, verifier middleware.Verifier, corsOrigin string) *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware(corsOrigin))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)

		files := api.Group("/files", middleware.RequireAuth(verifier))
		{
			files.POST("/upload", h.Upload)        // upload a file
			files.GET("", h.List)                  // list the caller's files
			files.GET("/:id", h.Get)               // get a single file's metadata
			files.GET("/:id/download", h.Download) // download file content
			files.DELETE("/:id", h.Delete)         // delete a file
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "Route not found"})
	})

	return r
}
