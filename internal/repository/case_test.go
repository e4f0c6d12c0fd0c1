package repository

import (
	"testing"

	"github.com/shenikar/sos_intake_service/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBuildCaseFilter(t *testing.T) {
	testCases := []struct {
		name      string
		filter    models.CaseFilter
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "no filter",
			filter:    models.CaseFilter{Page: 1, PageSize: 20},
			wantWhere: "",
			wantArgs:  nil,
		},
		{
			name:      "severity only",
			filter:    models.CaseFilter{Severity: models.SeverityRed},
			wantWhere: "WHERE severity = $1",
			wantArgs:  []any{models.SeverityRed},
		},
		{
			name:      "severity and status",
			filter:    models.CaseFilter{Severity: models.SeverityGreen, Status: models.StatusEscalated},
			wantWhere: "WHERE severity = $1 AND status = $2",
			wantArgs:  []any{models.SeverityGreen, models.StatusEscalated},
		},
		{
			name:      "status only",
			filter:    models.CaseFilter{Status: models.StatusSubmitted},
			wantWhere: "WHERE status = $1",
			wantArgs:  []any{models.StatusSubmitted},
		},
		{
			name:      "status and geo cell",
			filter:    models.CaseFilter{Status: models.StatusEscalated, GeoCell: "3be7c"},
			wantWhere: "WHERE status = $1 AND geo_cell = $2",
			wantArgs:  []any{models.StatusEscalated, "3be7c"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			where, args := buildCaseFilter(tc.filter)

			assert.Equal(t, tc.wantWhere, where)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}

func TestSubmitActor(t *testing.T) {
	assert.Equal(t, "intern-7", submitActor(&models.Case{ReporterID: "intern-7"}))
	assert.Equal(t, "anonymous", submitActor(&models.Case{Anonymous: true, ReporterID: "intern-7"}))
	assert.Equal(t, "anonymous", submitActor(&models.Case{}))
}

func TestNullString(t *testing.T) {
	assert.Nil(t, nullString(""))
	if s := nullString("x"); assert.NotNil(t, s) {
		assert.Equal(t, "x", *s)
	}
}

func TestCaseCacheKey(t *testing.T) {
	assert.Equal(t, "sos_case:PRS-SOS-2025-0001", caseCacheKey("PRS-SOS-2025-0001"))
}
