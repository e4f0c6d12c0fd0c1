package models

import (
	"time"

	"github.com/google/uuid"
)

// Severity - уровень серьезности SOS-обращения
type Severity string

const (
	SeverityRed    Severity = "RED"
	SeverityOrange Severity = "ORANGE"
	SeverityGreen  Severity = "GREEN"
)

// Severities возвращает все допустимые уровни в порядке убывания серьезности
func Severities() []Severity {
	return []Severity{SeverityRed, SeverityOrange, SeverityGreen}
}

// Valid сообщает, входит ли значение в закрытый набор уровней
func (s Severity) Valid() bool {
	switch s {
	case SeverityRed, SeverityOrange, SeverityGreen:
		return true
	}
	return false
}

// Статусы обращения
const (
	StatusSubmitted   = "submitted"
	StatusUnderReview = "under_review"
	StatusEscalated   = "escalated"
	StatusResolved    = "resolved"
)

// Действия группы реагирования над обращением
const (
	ActionSubmit   = "submit"
	ActionAccept   = "accept"
	ActionEscalate = "escalate"
	ActionResolve  = "resolve"
)

// Case - зарегистрированное SOS-обращение. После создания поля отчета не меняются,
// меняется только статус.
type Case struct {
	ID              uuid.UUID   `json:"id"`
	CaseID          string      `json:"case_id"`
	Severity        Severity    `json:"severity"`
	Description     string      `json:"description"`
	SLA             string      `json:"sla"`
	Status          string      `json:"status"`
	GeoTagged       bool        `json:"geo_tagged"`
	Latitude        *float64    `json:"latitude,omitempty"`
	Longitude       *float64    `json:"longitude,omitempty"`
	GeoCell         string      `json:"geo_cell,omitempty"`
	Anonymous       bool        `json:"anonymous"`
	ReporterID      string      `json:"reporter_id,omitempty"`
	ContactEmail    string      `json:"contact_email,omitempty"`
	Evidence        []*Evidence `json:"evidence,omitempty"`
	DroppedEvidence int         `json:"dropped_evidence"`
	CreatedAt       time.Time   `json:"created_at"`
	DueAt           time.Time   `json:"due_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// Open сообщает, что обращение еще не закрыто
func (c *Case) Open() bool {
	return c.Status != StatusResolved
}
