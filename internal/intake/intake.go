package intake

import (
	"context"
	"time"

	"github.com/shenikar/sos_intake_service/internal/models"
)

// Result - итог регистрации, который возвращается заявителю
type Result struct {
	CaseID    string
	Severity  models.Severity
	SLA       string
	Status    string
	CreatedAt time.Time
	DueAt     time.Time
	Emergency bool
	Report    *ValidatedReport
}

// Pipeline связывает проверку, сортировку и выдачу идентификатора
type Pipeline struct {
	seq Sequencer
	now func() time.Time
}

func NewPipeline(seq Sequencer) *Pipeline {
	return &Pipeline{
		seq: seq,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// WithClock подменяет источник времени
func (p *Pipeline) WithClock(now func() time.Time) *Pipeline {
	p.now = now
	return p
}

// Submit выполняет validate -> triage -> assign id. При ошибке валидации
// номер из счетчика не расходуется.
func (p *Pipeline) Submit(ctx context.Context, in Input) (*Result, error) {
	report, err := Validate(in)
	if err != nil {
		return nil, err
	}

	decision, err := Triage(report.Severity)
	if err != nil {
		return nil, err
	}

	createdAt := p.now()
	caseID, err := AssignCaseID(ctx, createdAt, p.seq)
	if err != nil {
		return nil, err
	}

	return &Result{
		CaseID:    caseID,
		Severity:  decision.Severity,
		SLA:       decision.SLA,
		Status:    models.StatusSubmitted,
		CreatedAt: createdAt,
		DueAt:     createdAt.Add(decision.ResponseWindow),
		Emergency: decision.Emergency,
		Report:    report,
	}, nil
}
