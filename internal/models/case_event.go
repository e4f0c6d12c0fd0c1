package models

import (
	"time"
)

// CaseEvent представляет запись в хронологии обращения
type CaseEvent struct {
	ID        int64     `json:"id"`
	CaseID    string    `json:"case_id"`
	Action    string    `json:"action"`
	Actor     string    `json:"actor"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// CaseFilter - параметры выборки списка обращений.
// GeoCell - токен S2-ячейки маршрутизации.
type CaseFilter struct {
	Severity Severity
	Status   string
	GeoCell  string
	Page     int
	PageSize int
}

// Normalize приводит пагинацию к допустимым значениям
func (f *CaseFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 || f.PageSize > MaxPageSize {
		f.PageSize = DefaultPageSize
	}
}

// CaseStats - количество открытых обращений по уровням и статусам
type CaseStats struct {
	BySeverity map[Severity]int `json:"by_severity"`
	ByStatus   map[string]int   `json:"by_status"`
	Overdue    int              `json:"overdue"`
}
