package intake

import (
	"time"

	"github.com/shenikar/sos_intake_service/internal/models"
)

// Decision - результат сортировки обращения по уровню
type Decision struct {
	Severity       models.Severity
	SLA            string
	ResponseWindow time.Duration
	Emergency      bool
}

var slaTable = map[models.Severity]Decision{
	models.SeverityRed: {
		Severity:  models.SeverityRed,
		SLA:       "Immediate — phone call + SMS to emergency contacts",
		Emergency: true,
	},
	models.SeverityOrange: {
		Severity:       models.SeverityOrange,
		SLA:            "24h response to triage",
		ResponseWindow: 24 * time.Hour,
	},
	models.SeverityGreen: {
		Severity:       models.SeverityGreen,
		SLA:            "72h response",
		ResponseWindow: 72 * time.Hour,
	},
}

// Triage выбирает SLA только по уровню серьезности
func Triage(severity models.Severity) (Decision, error) {
	d, ok := slaTable[severity]
	if !ok {
		return Decision{}, ErrInvalidSeverity
	}
	return d, nil
}
