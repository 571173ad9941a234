package httpapi

import (
	"github.com/gin-gonic/gin"
)

// NewRouter wires the full API surface onto a gin engine.
func NewRouter(h *Handlers) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	{
		v1.POST("/experience/count", h.countExperiences)
		v1.POST("/experience/batch-save", h.batchSaveExperiences)

		v1.POST("/documents/upload", h.uploadDocument)
		v1.POST("/documents/attach", h.attachDocument)
		v1.GET("/documents", h.listDocuments)
		v1.POST("/documents/delete", h.deleteDocument)

		v1.GET("/checklist", h.lookupChecklist)
		v1.POST("/checklist/save", h.saveChecklist)

		v1.POST("/leads", h.createLead)
	}

	return r
}
