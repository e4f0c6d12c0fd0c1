package models

import (
	"time"

	"github.com/google/uuid"
)

// Evidence - вложение к обращению. StorageKey пуст, если файл не удалось сохранить
// или клиент прислал только метаданные.
type Evidence struct {
	ID          uuid.UUID `json:"id"`
	CaseID      string    `json:"case_id"`
	Position    int       `json:"position"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type,omitempty"`
	ByteSize    int64     `json:"byte_size"`
	StorageKey  string    `json:"storage_key,omitempty"`
	Checksum    string    `json:"checksum,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Stored сообщает, лежит ли содержимое вложения в хранилище
func (e *Evidence) Stored() bool {
	return e.StorageKey != ""
}
