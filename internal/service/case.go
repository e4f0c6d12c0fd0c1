package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/sos_intake_service/internal/config"
	"github.com/shenikar/sos_intake_service/internal/intake"
	"github.com/shenikar/sos_intake_service/internal/models"
	"github.com/shenikar/sos_intake_service/internal/notify"
	"github.com/sirupsen/logrus"
)

var (
	ErrCaseNotFound       = errors.New("case not found")
	ErrEvidenceNotFound   = errors.New("evidence not found")
	ErrEvidenceNotStored  = errors.New("evidence content is not stored")
	ErrInvalidAction      = errors.New("invalid case action")
	ErrInvalidTransition  = errors.New("action not allowed in current case status")
	ErrStorageUnavailable = errors.New("evidence storage is not configured")
)

const slaMonitorActor = "sla-monitor"

// CaseRepository определяет контракт для работы с бд обращений
type CaseRepository interface {
	NextCaseSeq(ctx context.Context, year int) (int, error)
	Create(ctx context.Context, c *models.Case) error
	GetByCaseID(ctx context.Context, caseID string) (*models.Case, error)
	ListCases(ctx context.Context, filter models.CaseFilter) ([]*models.Case, error)
	UpdateStatus(ctx context.Context, caseID, from, to string, event *models.CaseEvent) error
	ListEvents(ctx context.Context, caseID string) ([]*models.CaseEvent, error)
	ListOverdue(ctx context.Context, now time.Time, limit int) ([]*models.Case, error)
	GetStats(ctx context.Context, now time.Time) (*models.CaseStats, error)
	GetCaseFromCache(ctx context.Context, caseID string) (*models.Case, error)
	SetCaseCache(ctx context.Context, c *models.Case) error
	InvalidateCaseCache(ctx context.Context, caseID string) error
}

// EvidenceStore определяет контракт хранилища вложений
type EvidenceStore interface {
	Put(ctx context.Context, caseID string, a intake.Attachment) (*models.Evidence, error)
	PresignedURL(ctx context.Context, storageKey, filename string) (string, error)
	Remove(ctx context.Context, storageKey string) error
}

// CaseService определяет контракт бизнес-логики SOS-обращений
type CaseService interface {
	SubmitCase(ctx context.Context, in intake.Input) (*models.Case, error)
	GetCase(ctx context.Context, caseID string) (*models.Case, error)
	ListCases(ctx context.Context, filter models.CaseFilter) ([]*models.Case, error)
	ApplyAction(ctx context.Context, caseID, action, actor string) (*models.Case, error)
	ListEvents(ctx context.Context, caseID string) ([]*models.CaseEvent, error)
	GetStats(ctx context.Context) (*models.CaseStats, error)
	EvidenceURL(ctx context.Context, caseID string, evidenceID uuid.UUID) (string, error)
	EscalateOverdue(ctx context.Context, now time.Time) (int, error)
}

type transition struct {
	from []string
	to   string
}

var transitions = map[string]transition{
	models.ActionAccept: {
		from: []string{models.StatusSubmitted},
		to:   models.StatusUnderReview,
	},
	models.ActionEscalate: {
		from: []string{models.StatusSubmitted, models.StatusUnderReview},
		to:   models.StatusEscalated,
	},
	models.ActionResolve: {
		from: []string{models.StatusSubmitted, models.StatusUnderReview, models.StatusEscalated},
		to:   models.StatusResolved,
	},
}

type caseService struct {
	repo      CaseRepository
	evidence  EvidenceStore
	publisher notify.Publisher
	pipeline  *intake.Pipeline
	logger    *logrus.Logger
	cfg       *config.Config
}

// NewCaseService создает сервис. evidence может быть nil: тогда сохраняются только метаданные вложений.
func NewCaseService(repo CaseRepository, evidence EvidenceStore, publisher notify.Publisher, logger *logrus.Logger, cfg *config.Config) CaseService {
	return &caseService{
		repo:      repo,
		evidence:  evidence,
		publisher: publisher,
		pipeline:  intake.NewPipeline(intake.SequencerFunc(repo.NextCaseSeq)),
		logger:    logger,
		cfg:       cfg,
	}
}

// SubmitCase регистрирует обращение и ставит оповещения в очередь
func (s *caseService) SubmitCase(ctx context.Context, in intake.Input) (*models.Case, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "case",
		"method":   "SubmitCase",
		"severity": in.Severity,
	})
	log.Info("Attempting to register a new SOS case")

	res, err := s.pipeline.Submit(ctx, in)
	if err != nil {
		var vErr *intake.ValidationError
		if errors.As(err, &vErr) {
			log.WithField("code", vErr.Code).Warn("SOS case rejected by validation")
			return nil, err
		}
		log.WithError(err).Error("Failed to assign case ID")
		return nil, fmt.Errorf("service: could not register case: %w", err)
	}

	report := res.Report
	c := &models.Case{
		ID:              uuid.New(),
		CaseID:          res.CaseID,
		Severity:        res.Severity,
		Description:     report.Description,
		SLA:             res.SLA,
		Status:          res.Status,
		GeoTagged:       report.GeoTagged,
		Anonymous:       report.Anonymous,
		ReporterID:      report.ReporterID,
		ContactEmail:    report.ContactEmail,
		DroppedEvidence: report.DroppedCount(),
		CreatedAt:       res.CreatedAt,
		DueAt:           res.DueAt,
		UpdatedAt:       res.CreatedAt,
	}
	if report.Location != nil {
		lat, lon := report.Location.Latitude, report.Location.Longitude
		c.Latitude = &lat
		c.Longitude = &lon
		c.GeoCell = report.Location.Cell
	}
	log = log.WithField("case_id", c.CaseID)
	if c.DroppedEvidence > 0 {
		log.WithField("dropped", c.DroppedEvidence).Warn("Oversized evidence dropped from case")
	}

	c.Evidence = s.storeEvidence(ctx, log, c, report.Accepted)

	if err := s.repo.Create(ctx, c); err != nil {
		log.WithError(err).Error("Failed to create case in repository")
		s.discardEvidence(ctx, log, c.Evidence)
		return nil, fmt.Errorf("service: could not create case: %w", err)
	}

	if err := s.repo.SetCaseCache(ctx, c); err != nil {
		log.WithError(err).Warn("Failed to cache case")
	}

	// Сбой оповещения не отменяет уже зарегистрированное обращение
	if res.Emergency {
		s.publish(ctx, log, notify.NewCaseEvent(notify.KindEmergency, c))
	}
	if c.ContactEmail != "" {
		s.publish(ctx, log, notify.NewCaseEvent(notify.KindConfirmation, c))
	}

	log.Info("SOS case registered successfully")
	return c, nil
}

func (s *caseService) storeEvidence(ctx context.Context, log *logrus.Entry, c *models.Case, accepted []intake.Attachment) []*models.Evidence {
	out := make([]*models.Evidence, 0, len(accepted))
	for i, a := range accepted {
		ev := &models.Evidence{
			Filename:    a.Filename,
			ContentType: a.ContentType,
			ByteSize:    a.Size,
		}
		if a.Open != nil && s.evidence != nil {
			stored, err := s.evidence.Put(ctx, c.CaseID, a)
			if err != nil {
				log.WithError(err).WithField("filename", a.Filename).Warn("Failed to store evidence, keeping metadata only")
			} else {
				ev = stored
			}
		}
		ev.ID = uuid.New()
		ev.CaseID = c.CaseID
		ev.Position = i
		ev.CreatedAt = c.CreatedAt
		out = append(out, ev)
	}
	return out
}

// discardEvidence удаляет объекты обращения, которое не удалось сохранить
func (s *caseService) discardEvidence(ctx context.Context, log *logrus.Entry, evidence []*models.Evidence) {
	for _, ev := range evidence {
		if !ev.Stored() || s.evidence == nil {
			continue
		}
		if err := s.evidence.Remove(ctx, ev.StorageKey); err != nil {
			log.WithError(err).WithField("storage_key", ev.StorageKey).Warn("Failed to remove orphaned evidence")
		}
	}
}

func (s *caseService) publish(ctx context.Context, log *logrus.Entry, event notify.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).WithField("event_kind", event.Kind).Error("Failed to publish notify event")
	}
}

// GetCase получает обращение по идентификатору
func (s *caseService) GetCase(ctx context.Context, caseID string) (*models.Case, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "case",
		"method":  "GetCase",
		"case_id": caseID,
	})
	log.Info("Fetching case by ID")

	cached, err := s.repo.GetCaseFromCache(ctx, caseID)
	if err != nil {
		log.WithError(err).Warn("Failed to read case from cache")
	}
	if cached != nil {
		log.Debug("Case served from cache")
		return cached, nil
	}

	c, err := s.repo.GetByCaseID(ctx, caseID)
	if err != nil {
		log.WithError(err).Error("Failed to get case in repository")
		return nil, fmt.Errorf("service: could not get case: %w", err)
	}

	if err := s.repo.SetCaseCache(ctx, c); err != nil {
		log.WithError(err).Warn("Failed to cache case")
	}

	log.Info("Case fetched successfully")
	return c, nil
}

// ListCases возвращает список обращений с пагинацией
func (s *caseService) ListCases(ctx context.Context, filter models.CaseFilter) ([]*models.Case, error) {
	filter.Normalize()

	log := s.logger.WithFields(logrus.Fields{
		"service":   "case",
		"method":    "ListCases",
		"page":      filter.Page,
		"page_size": filter.PageSize,
		"severity":  filter.Severity,
		"status":    filter.Status,
		"geo_cell":  filter.GeoCell,
	})
	log.Info("Listing cases")

	cases, err := s.repo.ListCases(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list cases from repository")
		return nil, fmt.Errorf("service: could not list cases: %w", err)
	}

	log.WithField("count", len(cases)).Info("Cases listed successfully")
	return cases, nil
}

// ApplyAction переводит обращение в новый статус и пишет событие в хронологию
func (s *caseService) ApplyAction(ctx context.Context, caseID, action, actor string) (*models.Case, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "case",
		"method":  "ApplyAction",
		"case_id": caseID,
		"action":  action,
		"actor":   actor,
	})
	log.Info("Attempting to apply case action")

	tr, ok := transitions[action]
	if !ok {
		return nil, fmt.Errorf("service: %q: %w", action, ErrInvalidAction)
	}

	c, err := s.repo.GetByCaseID(ctx, caseID)
	if err != nil {
		log.WithError(err).Warn("Attempted to act on a non-existent case")
		return nil, fmt.Errorf("service: case %s not found for %s: %w", caseID, action, err)
	}

	if !allowed(tr.from, c.Status) {
		log.WithField("status", c.Status).Warn("Case action not allowed")
		return nil, fmt.Errorf("service: %s from %s: %w", action, c.Status, ErrInvalidTransition)
	}

	event := &models.CaseEvent{
		CaseID:    caseID,
		Action:    action,
		Actor:     actor,
		Status:    tr.to,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.UpdateStatus(ctx, caseID, c.Status, tr.to, event); err != nil {
		log.WithError(err).Error("Failed to update case status in repository")
		return nil, fmt.Errorf("service: could not update case status: %w", err)
	}
	c.Status = tr.to
	c.UpdatedAt = event.CreatedAt

	if err := s.repo.InvalidateCaseCache(ctx, caseID); err != nil {
		log.WithError(err).Warn("Failed to invalidate case cache")
	}

	if tr.to == models.StatusEscalated {
		e := notify.NewCaseEvent(notify.KindEscalation, c)
		e.Actor = actor
		s.publish(ctx, log, e)
	}

	log.WithField("status", c.Status).Info("Case action applied successfully")
	return c, nil
}

func allowed(from []string, status string) bool {
	for _, st := range from {
		if st == status {
			return true
		}
	}
	return false
}

// ListEvents возвращает хронологию обращения
func (s *caseService) ListEvents(ctx context.Context, caseID string) ([]*models.CaseEvent, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "case",
		"method":  "ListEvents",
		"case_id": caseID,
	})

	if _, err := s.repo.GetByCaseID(ctx, caseID); err != nil {
		log.WithError(err).Warn("Attempted to list events of a non-existent case")
		return nil, fmt.Errorf("service: could not get case: %w", err)
	}

	events, err := s.repo.ListEvents(ctx, caseID)
	if err != nil {
		log.WithError(err).Error("Failed to list case events from repository")
		return nil, fmt.Errorf("service: could not list case events: %w", err)
	}
	return events, nil
}

// GetStats возвращает количество открытых обращений
func (s *caseService) GetStats(ctx context.Context) (*models.CaseStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "case",
		"method":  "GetStats",
	})

	stats, err := s.repo.GetStats(ctx, time.Now().UTC())
	if err != nil {
		log.WithError(err).Error("Failed to get case stats from repository")
		return nil, fmt.Errorf("service: could not get stats: %w", err)
	}
	return stats, nil
}

// EvidenceURL выдает временную ссылку на скачивание вложения
func (s *caseService) EvidenceURL(ctx context.Context, caseID string, evidenceID uuid.UUID) (string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "case",
		"method":      "EvidenceURL",
		"case_id":     caseID,
		"evidence_id": evidenceID,
	})

	c, err := s.GetCase(ctx, caseID)
	if err != nil {
		return "", err
	}

	var ev *models.Evidence
	for _, e := range c.Evidence {
		if e.ID == evidenceID {
			ev = e
			break
		}
	}
	if ev == nil {
		return "", fmt.Errorf("service: %s in %s: %w", evidenceID, caseID, ErrEvidenceNotFound)
	}
	if !ev.Stored() {
		return "", fmt.Errorf("service: %s: %w", evidenceID, ErrEvidenceNotStored)
	}
	if s.evidence == nil {
		return "", ErrStorageUnavailable
	}

	url, err := s.evidence.PresignedURL(ctx, ev.StorageKey, ev.Filename)
	if err != nil {
		log.WithError(err).Error("Failed to presign evidence URL")
		return "", fmt.Errorf("service: could not presign evidence: %w", err)
	}
	return url, nil
}

// EscalateOverdue эскалирует обращения, по которым истек срок SLA без реакции
func (s *caseService) EscalateOverdue(ctx context.Context, now time.Time) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "case",
		"method":  "EscalateOverdue",
	})

	overdue, err := s.repo.ListOverdue(ctx, now, s.cfg.SLASweepBatch)
	if err != nil {
		log.WithError(err).Error("Failed to list overdue cases")
		return 0, fmt.Errorf("service: could not list overdue cases: %w", err)
	}

	var errs []error
	escalated := 0
	for _, c := range overdue {
		if _, err := s.ApplyAction(ctx, c.CaseID, models.ActionEscalate, slaMonitorActor); err != nil {
			// Обращение успели взять в работу между выборкой и обновлением
			if errors.Is(err, ErrInvalidTransition) {
				continue
			}
			errs = append(errs, err)
			continue
		}
		escalated++
	}

	if escalated > 0 {
		log.WithField("count", escalated).Info("Overdue cases escalated")
	}
	return escalated, errors.Join(errs...)
}
