package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/sos_intake_service/internal/models"
	"github.com/shenikar/sos_intake_service/internal/service"
)

const caseColumns = `
	id,
	case_id,
	severity,
	description,
	sla,
	status,
	geo_tagged,
	latitude,
	longitude,
	COALESCE(geo_cell, ''),
	anonymous,
	COALESCE(reporter_id, ''),
	COALESCE(contact_email, ''),
	dropped_evidence,
	created_at,
	due_at,
	updated_at
`

type CaseRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewCaseRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.CaseRepository {
	return &CaseRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// NextCaseSeq атомарно выдает следующий номер обращения за год
func (r *CaseRepository) NextCaseSeq(ctx context.Context, year int) (int, error) {
	query := `
		INSERT INTO sos_case_counters (year, seq)
		VALUES ($1, 1)
		ON CONFLICT (year) DO UPDATE SET seq = sos_case_counters.seq + 1
		RETURNING seq;
	`
	var seq int
	if err := r.db.QueryRow(ctx, query, year).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to allocate case sequence: %w", err)
	}
	return seq, nil
}

// Create сохраняет обращение, его вложения и первое событие хронологии одной транзакцией
func (r *CaseRepository) Create(ctx context.Context, c *models.Case) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO sos_cases (
			id, case_id, severity, description, sla, status, geo_tagged,
			latitude, longitude, geo_cell, anonymous, reporter_id, contact_email,
			dropped_evidence, created_at, due_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err = tx.Exec(ctx, query,
		c.ID,
		c.CaseID,
		c.Severity,
		c.Description,
		c.SLA,
		c.Status,
		c.GeoTagged,
		c.Latitude,
		c.Longitude,
		nullString(c.GeoCell),
		c.Anonymous,
		nullString(c.ReporterID),
		nullString(c.ContactEmail),
		c.DroppedEvidence,
		c.CreatedAt,
		c.DueAt,
		c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create case: %w", err)
	}

	if len(c.Evidence) > 0 {
		batch := &pgx.Batch{}
		for _, ev := range c.Evidence {
			batch.Queue(`
				INSERT INTO sos_case_evidence (
					id, case_id, position, filename, content_type, byte_size, storage_key, checksum, created_at
				)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
				ev.ID,
				c.CaseID,
				ev.Position,
				ev.Filename,
				nullString(ev.ContentType),
				ev.ByteSize,
				nullString(ev.StorageKey),
				nullString(ev.Checksum),
				ev.CreatedAt,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to save case evidence: %w", err)
		}
	}

	event := &models.CaseEvent{
		CaseID:    c.CaseID,
		Action:    models.ActionSubmit,
		Actor:     submitActor(c),
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
	}
	if err := insertEvent(ctx, tx, event); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit case: %w", err)
	}
	return nil
}

// GetByCaseID возвращает обращение вместе с вложениями
func (r *CaseRepository) GetByCaseID(ctx context.Context, caseID string) (*models.Case, error) {
	query := `SELECT ` + caseColumns + ` FROM sos_cases WHERE case_id = $1;`

	c, err := scanCase(r.db.QueryRow(ctx, query, caseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("case %s: %w", caseID, service.ErrCaseNotFound)
		}
		return nil, fmt.Errorf("failed to get case by id: %w", err)
	}

	evidence, err := r.listEvidence(ctx, caseID)
	if err != nil {
		return nil, err
	}
	c.Evidence = evidence
	return c, nil
}

func (r *CaseRepository) listEvidence(ctx context.Context, caseID string) ([]*models.Evidence, error) {
	query := `
		SELECT
			id,
			case_id,
			position,
			filename,
			COALESCE(content_type, ''),
			byte_size,
			COALESCE(storage_key, ''),
			COALESCE(checksum, ''),
			created_at
		FROM sos_case_evidence
		WHERE case_id = $1
		ORDER BY position;
	`
	rows, err := r.db.Query(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list case evidence: %w", err)
	}
	defer rows.Close()

	evidence := make([]*models.Evidence, 0)
	for rows.Next() {
		ev := &models.Evidence{}
		err := rows.Scan(
			&ev.ID,
			&ev.CaseID,
			&ev.Position,
			&ev.Filename,
			&ev.ContentType,
			&ev.ByteSize,
			&ev.StorageKey,
			&ev.Checksum,
			&ev.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan evidence row: %w", err)
		}
		evidence = append(evidence, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error evidence iteration: %w", err)
	}
	return evidence, nil
}

// ListCases возвращает список обращений с фильтрами и пагинацией, новые первыми
func (r *CaseRepository) ListCases(ctx context.Context, filter models.CaseFilter) ([]*models.Case, error) {
	where, args := buildCaseFilter(filter)
	offset := (filter.Page - 1) * filter.PageSize
	args = append(args, filter.PageSize, offset)

	query := fmt.Sprintf(`SELECT %s FROM sos_cases %s ORDER BY created_at DESC, case_id DESC LIMIT $%d OFFSET $%d;`,
		caseColumns, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	defer rows.Close()

	return collectCases(rows)
}

// buildCaseFilter собирает WHERE и аргументы по заданным полям фильтра
func buildCaseFilter(filter models.CaseFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if filter.Severity != "" {
		args = append(args, filter.Severity)
		conds = append(conds, fmt.Sprintf("severity = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.GeoCell != "" {
		args = append(args, filter.GeoCell)
		conds = append(conds, fmt.Sprintf("geo_cell = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// UpdateStatus меняет статус, только если обращение все еще в статусе from
func (r *CaseRepository) UpdateStatus(ctx context.Context, caseID, from, to string, event *models.CaseEvent) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		UPDATE sos_cases SET
			status = $1,
			updated_at = $2
		WHERE case_id = $3 AND status = $4;
	`
	cmdTag, err := tx.Exec(ctx, query, to, event.CreatedAt, caseID, from)
	if err != nil {
		return fmt.Errorf("failed to update case status: %w", err)
	}

	// Статус успели поменять параллельно
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("case %s is no longer %s: %w", caseID, from, service.ErrInvalidTransition)
	}

	if err := insertEvent(ctx, tx, event); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit case status: %w", err)
	}
	return nil
}

func insertEvent(ctx context.Context, tx pgx.Tx, event *models.CaseEvent) error {
	query := `
		INSERT INTO sos_case_events (case_id, action, actor, status, created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id;
	`
	err := tx.QueryRow(ctx, query,
		event.CaseID,
		event.Action,
		event.Actor,
		event.Status,
		event.CreatedAt,
	).Scan(&event.ID)
	if err != nil {
		return fmt.Errorf("failed to save case event: %w", err)
	}
	return nil
}

// ListEvents возвращает хронологию обращения в порядке записи
func (r *CaseRepository) ListEvents(ctx context.Context, caseID string) ([]*models.CaseEvent, error) {
	query := `
		SELECT id, case_id, action, actor, status, created_at
		FROM sos_case_events
		WHERE case_id = $1
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list case events: %w", err)
	}
	defer rows.Close()

	events := make([]*models.CaseEvent, 0)
	for rows.Next() {
		e := &models.CaseEvent{}
		if err := rows.Scan(&e.ID, &e.CaseID, &e.Action, &e.Actor, &e.Status, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan case event row: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error event iteration: %w", err)
	}
	return events, nil
}

// ListOverdue возвращает не взятые в работу обращения с истекшим сроком реакции
func (r *CaseRepository) ListOverdue(ctx context.Context, now time.Time, limit int) ([]*models.Case, error) {
	query := `SELECT ` + caseColumns + `
		FROM sos_cases
		WHERE status = $1 AND due_at < $2
		ORDER BY due_at
		LIMIT $3;
	`
	rows, err := r.db.Query(ctx, query, models.StatusSubmitted, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue cases: %w", err)
	}
	defer rows.Close()

	return collectCases(rows)
}

// GetStats считает открытые обращения по уровням и статусам
func (r *CaseRepository) GetStats(ctx context.Context, now time.Time) (*models.CaseStats, error) {
	query := `
		SELECT
			severity,
			status,
			COUNT(*),
			COUNT(*) FILTER (WHERE status = $1 AND due_at < $2)
		FROM sos_cases
		WHERE status <> $3
		GROUP BY severity, status;
	`
	rows, err := r.db.Query(ctx, query, models.StatusSubmitted, now, models.StatusResolved)
	if err != nil {
		return nil, fmt.Errorf("failed to get case stats: %w", err)
	}
	defer rows.Close()

	stats := &models.CaseStats{
		BySeverity: make(map[models.Severity]int),
		ByStatus:   make(map[string]int),
	}
	for _, sev := range models.Severities() {
		stats.BySeverity[sev] = 0
	}
	for rows.Next() {
		var (
			severity       models.Severity
			status         string
			count, overdue int
		)
		if err := rows.Scan(&severity, &status, &count, &overdue); err != nil {
			return nil, fmt.Errorf("failed to scan stats row: %w", err)
		}
		stats.BySeverity[severity] += count
		stats.ByStatus[status] += count
		stats.Overdue += overdue
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error stats iteration: %w", err)
	}
	return stats, nil
}

// GetCaseFromCache пытается получить обращение из Redis
func (r *CaseRepository) GetCaseFromCache(ctx context.Context, caseID string) (*models.Case, error) {
	val, err := r.redisClient.Get(ctx, caseCacheKey(caseID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get case from cache: %w", err)
	}

	c := &models.Case{}
	if err := json.Unmarshal(val, c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal case from cache: %w", err)
	}
	return c, nil
}

// SetCaseCache сохраняет обращение в Redis
func (r *CaseRepository) SetCaseCache(ctx context.Context, c *models.Case) error {
	val, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal case for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, caseCacheKey(c.CaseID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set case in cache: %w", err)
	}
	return nil
}

// InvalidateCaseCache удаляет обращение из Redis кэша
func (r *CaseRepository) InvalidateCaseCache(ctx context.Context, caseID string) error {
	if err := r.redisClient.Del(ctx, caseCacheKey(caseID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate case cache: %w", err)
	}
	return nil
}

func caseCacheKey(caseID string) string {
	return "sos_case:" + caseID
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCase(row rowScanner) (*models.Case, error) {
	c := &models.Case{}
	err := row.Scan(
		&c.ID,
		&c.CaseID,
		&c.Severity,
		&c.Description,
		&c.SLA,
		&c.Status,
		&c.GeoTagged,
		&c.Latitude,
		&c.Longitude,
		&c.GeoCell,
		&c.Anonymous,
		&c.ReporterID,
		&c.ContactEmail,
		&c.DroppedEvidence,
		&c.CreatedAt,
		&c.DueAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func collectCases(rows pgx.Rows) ([]*models.Case, error) {
	cases := make([]*models.Case, 0)
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan case row: %w", err)
		}
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return cases, nil
}

// submitActor - кто открыл обращение; для анонимных идентификатор не раскрывается
func submitActor(c *models.Case) string {
	if c.Anonymous || c.ReporterID == "" {
		return "anonymous"
	}
	return c.ReporterID
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
