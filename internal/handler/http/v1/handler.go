package v1

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/sos_intake_service/internal/config"
	"github.com/shenikar/sos_intake_service/internal/geotag"
	"github.com/shenikar/sos_intake_service/internal/intake"
	"github.com/shenikar/sos_intake_service/internal/models"
	"github.com/shenikar/sos_intake_service/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	caseService service.CaseService
	logger      *logrus.Logger
	validate    *validator.Validate
	cfg         *config.Config
}

func NewHandler(caseService service.CaseService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		caseService: caseService,
		logger:      logger,
		validate:    validator.New(),
		cfg:         cfg,
	}
}

// @Summary Submit an SOS case
// @Description Register an SOS report. Accepts JSON with evidence metadata or multipart/form-data with "evidence" files. Public endpoint.
// @Tags SOS
// @Accept json,mpfd
// @Produce json
// @Param case body SubmitCaseRequest true "SOS report"
// @Success 201 {object} SubmitCaseResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /sos [post]
func (h *Handler) submitCase(c *gin.Context) {
	var input SubmitCaseRequest
	var files []*multipart.FileHeader
	log := h.logger.WithField("method", "submitCase")

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		if err := c.Request.ParseMultipartForm(h.cfg.MaxUploadMemory); err != nil {
			log.WithError(err).Warn("Failed to parse multipart form")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		defer func() { _ = c.Request.MultipartForm.RemoveAll() }()

		if err := c.ShouldBind(&input); err != nil {
			log.WithError(err).Warn("Failed to bind form")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		files = c.Request.MultipartForm.File["evidence"]
	} else if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	in := DTOToIntakeInput(input, files)

	// Ограничения ядра проверяются первыми, чтобы клиент получил код первой нарушенной проверки
	if _, err := intake.Validate(in); err != nil {
		h.respondError(c, log, err)
		return
	}

	// Невалидный адрес не блокирует SOS: обращение регистрируется без подтверждения по почте
	if in.ContactEmail != "" && h.validate.Var(in.ContactEmail, "email") != nil {
		log.Warn("Invalid contact email dropped from submission")
		in.ContactEmail = ""
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "InvalidRequest", "message": err.Error()})
		return
	}

	created, err := h.caseService.SubmitCase(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToSubmitResponse(created))
}

// @Summary Get a list of SOS cases
// @Description Get a paginated list of cases, newest first. Requires API key.
// @Tags SOS
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Param severity query string false "Severity filter" Enums(RED, ORANGE, GREEN)
// @Param status query string false "Status filter" Enums(submitted, under_review, escalated, resolved)
// @Param geoCell query string false "S2 routing cell token"
// @Success 200 {object} CaseListResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /sos [get]
func (h *Handler) listCases(c *gin.Context) {
	log := h.logger.WithField("method", "listCases")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	filter := models.CaseFilter{
		Severity: models.Severity(c.Query("severity")),
		Status:   c.Query("status"),
		GeoCell:  c.Query("geoCell"),
		Page:     page,
		PageSize: pageSize,
	}
	filter.Normalize()
	if filter.Severity != "" && !filter.Severity.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": intake.ErrInvalidSeverity.Code, "message": intake.ErrInvalidSeverity.Message})
		return
	}
	if filter.Status != "" && !validStatus(filter.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
		return
	}
	if filter.GeoCell != "" && !geotag.ValidCell(filter.GeoCell) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid geoCell filter"})
		return
	}

	cases, err := h.caseService.ListCases(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("Failed to list cases from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, CaseListResponse{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Items:    ModelsToCaseResponses(cases),
	})
}

func validStatus(status string) bool {
	switch status {
	case models.StatusSubmitted, models.StatusUnderReview, models.StatusEscalated, models.StatusResolved:
		return true
	}
	return false
}

// @Summary Get SOS case by ID
// @Description Get a single case with its evidence metadata. Requires API key.
// @Tags SOS
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param caseId path string true "Case ID" example(PRS-SOS-2025-0042)
// @Success 200 {object} CaseResponse
// @Failure 400 {object} map[string]string "Invalid case ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Case not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos/{caseId} [get]
func (h *Handler) getCase(c *gin.Context) {
	caseID, ok := h.caseIDParam(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getCase").WithField("case_id", caseID)

	found, err := h.caseService.GetCase(c.Request.Context(), caseID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToCaseResponse(found))
}

// @Summary Apply a response-team action
// @Description Accept, escalate or resolve a case. Requires API key.
// @Tags SOS
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param caseId path string true "Case ID"
// @Param action body CaseActionRequest true "Action"
// @Success 200 {object} CaseResponse
// @Failure 400 {object} map[string]string "Invalid case ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Case not found"
// @Failure 409 {object} map[string]string "Action not allowed in current status"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos/{caseId}/actions [post]
func (h *Handler) applyAction(c *gin.Context) {
	caseID, ok := h.caseIDParam(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "applyAction").WithField("case_id", caseID)

	var input CaseActionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.caseService.ApplyAction(c.Request.Context(), caseID, input.Action, input.Actor)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToCaseResponse(updated))
}

// @Summary Get case timeline
// @Description Get the ordered list of status changes for a case. Requires API key.
// @Tags SOS
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param caseId path string true "Case ID"
// @Success 200 {array} CaseEventResponse
// @Failure 400 {object} map[string]string "Invalid case ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Case not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos/{caseId}/events [get]
func (h *Handler) listEvents(c *gin.Context) {
	caseID, ok := h.caseIDParam(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listEvents").WithField("case_id", caseID)

	events, err := h.caseService.ListEvents(c.Request.Context(), caseID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToEventResponses(events))
}

// @Summary Get evidence download URL
// @Description Get a short-lived presigned URL for a stored attachment. Requires API key.
// @Tags SOS
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param caseId path string true "Case ID"
// @Param evidenceId path string true "Evidence ID"
// @Success 200 {object} EvidenceURLResponse
// @Failure 400 {object} map[string]string "Invalid case or evidence ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Case or evidence not found"
// @Failure 409 {object} map[string]string "Evidence content is not stored"
// @Failure 503 {object} map[string]string "Evidence storage unavailable"
// @Router /sos/{caseId}/evidence/{evidenceId} [get]
func (h *Handler) getEvidenceURL(c *gin.Context) {
	caseID, ok := h.caseIDParam(c)
	if !ok {
		return
	}
	evidenceID, err := uuid.Parse(c.Param("evidenceId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid evidence ID"})
		return
	}
	log := h.logger.WithField("method", "getEvidenceURL").WithField("case_id", caseID)

	url, err := h.caseService.EvidenceURL(c.Request.Context(), caseID, evidenceID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, EvidenceURLResponse{
		URL:       url,
		ExpiresIn: int(h.cfg.EvidenceURLTTL.Seconds()),
	})
}

// @Summary Get open case statistics
// @Description Get open case counts per severity and status, and the number of overdue cases. Requires API key.
// @Tags SOS
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.caseService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToStatsResponse(stats))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) caseIDParam(c *gin.Context) (string, bool) {
	caseID := c.Param("caseId")
	if !intake.ValidCaseID(caseID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid case ID"})
		return "", false
	}
	return caseID, true
}

// respondError переводит ошибки сервиса в HTTP-ответ
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	var vErr *intake.ValidationError
	switch {
	case errors.As(err, &vErr):
		log.WithField("code", vErr.Code).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Code, "message": vErr.Message})
	case errors.Is(err, service.ErrCaseNotFound):
		log.WithError(err).Warn("Case not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "case not found"})
	case errors.Is(err, service.ErrEvidenceNotFound):
		log.WithError(err).Warn("Evidence not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "evidence not found"})
	case errors.Is(err, service.ErrEvidenceNotStored):
		c.JSON(http.StatusConflict, gin.H{"error": "evidence content is not stored"})
	case errors.Is(err, service.ErrInvalidAction):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid action"})
	case errors.Is(err, service.ErrInvalidTransition):
		log.WithError(err).Warn("Case action rejected")
		c.JSON(http.StatusConflict, gin.H{"error": "action not allowed in current case status"})
	case errors.Is(err, service.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "evidence storage unavailable"})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
