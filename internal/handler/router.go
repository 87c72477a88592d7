package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"chartref/internal/annotate"
	"chartref/internal/middleware"
	"chartref/internal/resolve"
)

// NewRouter wires the API routes. logger may be nil.
func NewRouter(registry *annotate.Registry, logger *slog.Logger) *gin.Engine {
	resolver := resolve.New(logger)

	resolveHandler := NewResolveHandler(resolver)
	documentHandler := NewDocumentHandler(
		registry,
		annotate.NewHighlightService(registry, resolver, logger),
		annotate.NewHyperlinkService(registry, resolver, logger),
	)

	router := gin.New()
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))

	api := router.Group("/api/v1")
	{
		api.POST("/resolve", resolveHandler.Resolve)
		api.POST("/outer-references", resolveHandler.OuterReferences)

		documentsAPI := api.Group("/documents")
		{
			documentsAPI.PUT("/:id", documentHandler.PutDocument)
			documentsAPI.DELETE("/:id", documentHandler.DeleteDocument)
			documentsAPI.GET("/:id/annotations", documentHandler.ListAnnotations)

			documentsAPI.POST("/:id/highlights", documentHandler.ApplyHighlight)
			documentsAPI.GET("/:id/highlights", documentHandler.GetHighlights)
			documentsAPI.DELETE("/:id/highlights/:annotation", documentHandler.RemoveHighlight)

			documentsAPI.POST("/:id/hyperlinks", documentHandler.ApplyHyperlink)
			documentsAPI.GET("/:id/hyperlinks", documentHandler.GetHyperlinks)
			documentsAPI.GET("/:id/hyperlinks/parameters", documentHandler.HyperlinkParameters)
			documentsAPI.DELETE("/:id/hyperlinks/:annotation", documentHandler.RemoveHyperlink)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
