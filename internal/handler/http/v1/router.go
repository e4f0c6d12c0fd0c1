package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	sos := api.Group("/sos")
	{
		// Подача обращения открыта: заявитель может быть анонимным
		sos.POST("", h.submitCase)

		// Маршруты группы реагирования требуют API-ключ
		team := sos.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))
		team.GET("", h.listCases)
		team.GET("/stats", h.getStats)
		team.GET("/:caseId", h.getCase)
		team.POST("/:caseId/actions", h.applyAction)
		team.GET("/:caseId/events", h.listEvents)
		team.GET("/:caseId/evidence/:evidenceId", h.getEvidenceURL)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
