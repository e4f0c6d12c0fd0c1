package v1

// EvidenceMetaRequest DTO метаданных вложения при JSON-отправке
// @Description DTO метаданных вложения
type EvidenceMetaRequest struct {
	Filename    string `json:"filename" validate:"required,max=255"`
	ByteSize    int64  `json:"byteSize"`
	ContentType string `json:"contentType,omitempty" validate:"omitempty,max=127"`
}

// SubmitCaseRequest DTO для регистрации SOS-обращения.
// severity, description и координаты проверяет ядро приема: клиент получает код первой ошибки,
// а невалидные координаты просто отбрасываются.
// @Description DTO для регистрации SOS-обращения
type SubmitCaseRequest struct {
	Severity     string                `json:"severity" form:"severity" example:"ORANGE"`
	Description  string                `json:"description" form:"description" example:"Payment delay issue reported by intern"`
	Evidence     []EvidenceMetaRequest `json:"evidence,omitempty" form:"-" validate:"omitempty,dive"`
	GeoTag       bool                  `json:"geoTag" form:"geoTag"`
	Latitude     *float64              `json:"latitude,omitempty" form:"latitude"`
	Longitude    *float64              `json:"longitude,omitempty" form:"longitude"`
	Anonymous    bool                  `json:"anonymous" form:"anonymous"`
	ReporterID   string                `json:"reporterId,omitempty" form:"reporterId"`
	ContactEmail string                `json:"contactEmail,omitempty" form:"contactEmail"`
}

// SubmitCaseResponse DTO ответа на регистрацию
// @Description DTO ответа на регистрацию
type SubmitCaseResponse struct {
	CaseID           string `json:"caseId" example:"PRS-SOS-2025-0042"`
	Severity         string `json:"severity" example:"ORANGE"`
	SLA              string `json:"sla" example:"24h response to triage"`
	Status           string `json:"status" example:"submitted"`
	CreatedAt        string `json:"createdAt" example:"2025-10-01T10:30:00Z"`
	AcceptedEvidence int    `json:"acceptedEvidence"`
	DroppedEvidence  int    `json:"droppedEvidence"`
}

// EvidenceResponse DTO вложения
// @Description DTO вложения
type EvidenceResponse struct {
	ID          string `json:"id"`
	Position    int    `json:"position"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType,omitempty"`
	ByteSize    int64  `json:"byteSize"`
	Stored      bool   `json:"stored"`
	Checksum    string `json:"checksum,omitempty"`
}

// CaseResponse DTO с полной информацией об обращении
// @Description DTO с полной информацией об обращении
type CaseResponse struct {
	CaseID          string             `json:"caseId"`
	Severity        string             `json:"severity"`
	Description     string             `json:"description"`
	SLA             string             `json:"sla"`
	Status          string             `json:"status"`
	GeoTagged       bool               `json:"geoTagged"`
	Latitude        *float64           `json:"latitude,omitempty"`
	Longitude       *float64           `json:"longitude,omitempty"`
	GeoCell         string             `json:"geoCell,omitempty"`
	Anonymous       bool               `json:"anonymous"`
	ReporterID      string             `json:"reporterId,omitempty"`
	ContactEmail    string             `json:"contactEmail,omitempty"`
	Evidence        []EvidenceResponse `json:"evidence"`
	DroppedEvidence int                `json:"droppedEvidence"`
	CreatedAt       string             `json:"createdAt"`
	DueAt           string             `json:"dueAt"`
	UpdatedAt       string             `json:"updatedAt"`
}

// CaseListResponse DTO страницы списка обращений
// @Description DTO страницы списка обращений
type CaseListResponse struct {
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
	Items    []*CaseResponse `json:"items"`
}

// CaseActionRequest DTO действия группы реагирования
// @Description DTO действия группы реагирования
type CaseActionRequest struct {
	Action string `json:"action" validate:"required,oneof=accept escalate resolve" example:"accept"`
	Actor  string `json:"actor" validate:"required,max=128" example:"officer-17"`
}

// CaseEventResponse DTO записи хронологии
// @Description DTO записи хронологии
type CaseEventResponse struct {
	ID        int64  `json:"id"`
	Action    string `json:"action"`
	Actor     string `json:"actor"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	BySeverity map[string]int `json:"bySeverity"`
	ByStatus   map[string]int `json:"byStatus"`
	Overdue    int            `json:"overdue"`
}

// EvidenceURLResponse DTO со ссылкой на скачивание
// @Description DTO со ссылкой на скачивание
type EvidenceURLResponse struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expiresIn"`
}

// ErrorResponse DTO ошибки
// @Description DTO ошибки
type ErrorResponse struct {
	Error   string `json:"error" example:"DescriptionTooShort"`
	Message string `json:"message,omitempty" example:"description must be at least 10 characters"`
}
