package intake

import (
	"io"
	"unicode/utf8"

	"github.com/shenikar/sos_intake_service/internal/geotag"
	"github.com/shenikar/sos_intake_service/internal/models"
)

const (
	MinDescriptionLength = 10
	MaxDescriptionLength = 500

	// MaxEvidenceBytes - предельный размер одного вложения (10 MiB)
	MaxEvidenceBytes int64 = 10 * 1024 * 1024
)

// Attachment - вложение в том виде, в каком его прислал клиент.
// Open может быть nil, если передавались только метаданные; ядро его не вызывает.
type Attachment struct {
	Filename    string
	Size        int64
	ContentType string
	Open        func() (io.ReadCloser, error)
}

// Input - сырой запрос на регистрацию обращения
type Input struct {
	Severity     models.Severity
	Description  string
	Evidence     []Attachment
	GeoTagged    bool
	Location     *geotag.Point
	Anonymous    bool
	ReporterID   string
	ContactEmail string
}

// ValidatedReport - отчет, прошедший проверку. Accepted и Dropped вместе
// дают исходный список вложений с сохранением порядка.
type ValidatedReport struct {
	Severity     models.Severity
	Description  string
	Accepted     []Attachment
	Dropped      []Attachment
	GeoTagged    bool
	Location     *geotag.Point
	Anonymous    bool
	ReporterID   string
	ContactEmail string
}

// DroppedCount - число вложений, отброшенных из-за размера
func (r *ValidatedReport) DroppedCount() int {
	return len(r.Dropped)
}

// Validate проверяет запрос. Первая ошибка прерывает проверку.
// Слишком большие вложения не являются ошибкой: они переносятся в Dropped.
func Validate(in Input) (*ValidatedReport, error) {
	if !in.Severity.Valid() {
		return nil, ErrInvalidSeverity
	}

	n := utf8.RuneCountInString(in.Description)
	if n < MinDescriptionLength {
		return nil, ErrDescriptionTooShort
	}
	if n > MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}

	report := &ValidatedReport{
		Severity:     in.Severity,
		Description:  in.Description,
		Accepted:     make([]Attachment, 0, len(in.Evidence)),
		GeoTagged:    in.GeoTagged,
		Anonymous:    in.Anonymous,
		ReporterID:   in.ReporterID,
		ContactEmail: in.ContactEmail,
	}

	for _, a := range in.Evidence {
		if a.Size < 0 || a.Size > MaxEvidenceBytes {
			report.Dropped = append(report.Dropped, a)
			continue
		}
		report.Accepted = append(report.Accepted, a)
	}

	// Координаты без геометки или с невалидными значениями просто отбрасываются
	if in.GeoTagged && in.Location != nil {
		if p, ok := geotag.Normalize(in.Location.Latitude, in.Location.Longitude); ok {
			report.Location = &p
		}
	}

	if in.Anonymous {
		report.ReporterID = ""
		report.ContactEmail = ""
	}

	return report, nil
}
