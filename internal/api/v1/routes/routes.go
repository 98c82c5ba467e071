package routes

import (
	"github.com/gin-gonic/gin"

	"audioboard/internal/api/middleware"
	"audioboard/internal/api/v1/handlers"
	"audioboard/internal/api/v1/services"
)

// ServiceContainer holds all services required by the v1 routes.
type ServiceContainer struct {
	LibraryService   services.LibraryService
	RecordingService services.RecordingService

	// DefaultBucket is the operator-configured bucket; requests may
	// override it with a ?bucket= query parameter.
	DefaultBucket string
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	router.Use(middleware.RequestID())

	libraryHandler := handlers.NewLibraryHandler(container.LibraryService, container.DefaultBucket)
	library := router.Group("/library")
	{
		library.GET("", libraryHandler.GetLibrary)
		library.GET("/audio", libraryHandler.ListAudio)
		library.GET("/transcripts", libraryHandler.ListTranscripts)
		library.GET("/summaries", libraryHandler.ListSummaries)
	}

	objects := router.Group("/objects")
	{
		objects.GET("/content", libraryHandler.GetContent)
		objects.GET("/presign", libraryHandler.Presign)
	}

	if container.RecordingService != nil {
		recordingHandler := handlers.NewRecordingHandler(container.RecordingService, container.DefaultBucket)
		router.POST("/recordings", recordingHandler.Create)
	}
}
