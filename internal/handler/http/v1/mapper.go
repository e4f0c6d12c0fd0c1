package v1

import (
	"io"
	"mime/multipart"
	"time"

	"github.com/shenikar/sos_intake_service/internal/geotag"
	"github.com/shenikar/sos_intake_service/internal/intake"
	"github.com/shenikar/sos_intake_service/internal/models"
)

// DTOToIntakeInput преобразует DTO в запрос ядра приема.
// Если переданы файлы, метаданные из JSON игнорируются.
func DTOToIntakeInput(dto SubmitCaseRequest, files []*multipart.FileHeader) intake.Input {
	in := intake.Input{
		Severity:     models.Severity(dto.Severity),
		Description:  dto.Description,
		GeoTagged:    dto.GeoTag,
		Anonymous:    dto.Anonymous,
		ReporterID:   dto.ReporterID,
		ContactEmail: dto.ContactEmail,
	}

	if dto.Latitude != nil && dto.Longitude != nil {
		in.Location = &geotag.Point{Latitude: *dto.Latitude, Longitude: *dto.Longitude}
	}

	if len(files) > 0 {
		in.Evidence = make([]intake.Attachment, 0, len(files))
		for _, fh := range files {
			in.Evidence = append(in.Evidence, intake.Attachment{
				Filename:    fh.Filename,
				Size:        fh.Size,
				ContentType: fh.Header.Get("Content-Type"),
				Open: func() (io.ReadCloser, error) {
					return fh.Open()
				},
			})
		}
		return in
	}

	in.Evidence = make([]intake.Attachment, 0, len(dto.Evidence))
	for _, ev := range dto.Evidence {
		in.Evidence = append(in.Evidence, intake.Attachment{
			Filename:    ev.Filename,
			Size:        ev.ByteSize,
			ContentType: ev.ContentType,
		})
	}
	return in
}

// ModelToSubmitResponse формирует ответ заявителю
func ModelToSubmitResponse(model *models.Case) *SubmitCaseResponse {
	return &SubmitCaseResponse{
		CaseID:           model.CaseID,
		Severity:         string(model.Severity),
		SLA:              model.SLA,
		Status:           model.Status,
		CreatedAt:        formatTime(model.CreatedAt),
		AcceptedEvidence: len(model.Evidence),
		DroppedEvidence:  model.DroppedEvidence,
	}
}

// ModelToCaseResponse преобразует доменную модель в DTO для ответа
func ModelToCaseResponse(model *models.Case) *CaseResponse {
	evidence := make([]EvidenceResponse, len(model.Evidence))
	for i, ev := range model.Evidence {
		evidence[i] = EvidenceResponse{
			ID:          ev.ID.String(),
			Position:    ev.Position,
			Filename:    ev.Filename,
			ContentType: ev.ContentType,
			ByteSize:    ev.ByteSize,
			Stored:      ev.Stored(),
			Checksum:    ev.Checksum,
		}
	}

	return &CaseResponse{
		CaseID:          model.CaseID,
		Severity:        string(model.Severity),
		Description:     model.Description,
		SLA:             model.SLA,
		Status:          model.Status,
		GeoTagged:       model.GeoTagged,
		Latitude:        model.Latitude,
		Longitude:       model.Longitude,
		GeoCell:         model.GeoCell,
		Anonymous:       model.Anonymous,
		ReporterID:      model.ReporterID,
		ContactEmail:    model.ContactEmail,
		Evidence:        evidence,
		DroppedEvidence: model.DroppedEvidence,
		CreatedAt:       formatTime(model.CreatedAt),
		DueAt:           formatTime(model.DueAt),
		UpdatedAt:       formatTime(model.UpdatedAt),
	}
}

// ModelsToCaseResponses преобразует слайс моделей в слайс DTO
func ModelsToCaseResponses(models []*models.Case) []*CaseResponse {
	responses := make([]*CaseResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToCaseResponse(model)
	}
	return responses
}

// ModelsToEventResponses преобразует хронологию в DTO
func ModelsToEventResponses(events []*models.CaseEvent) []*CaseEventResponse {
	responses := make([]*CaseEventResponse, len(events))
	for i, e := range events {
		responses[i] = &CaseEventResponse{
			ID:        e.ID,
			Action:    e.Action,
			Actor:     e.Actor,
			Status:    e.Status,
			CreatedAt: formatTime(e.CreatedAt),
		}
	}
	return responses
}

// ModelToStatsResponse преобразует статистику в DTO
func ModelToStatsResponse(stats *models.CaseStats) *StatsResponse {
	resp := &StatsResponse{
		BySeverity: make(map[string]int, len(stats.BySeverity)),
		ByStatus:   make(map[string]int, len(stats.ByStatus)),
		Overdue:    stats.Overdue,
	}
	for sev, n := range stats.BySeverity {
		resp.BySeverity[string(sev)] = n
	}
	for st, n := range stats.ByStatus {
		resp.ByStatus[st] = n
	}
	return resp
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
