package intake

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"time"
)

const (
	caseIDPrefix = "PRS-SOS"
	maxCaseSeq   = 9999
)

var caseIDPattern = regexp.MustCompile(`^PRS-SOS-\d{4}-\d{4}$`)

// Sequencer выдает монотонно растущие номера в пределах календарного года.
// Реализации должны быть безопасны для конкурентного использования.
type Sequencer interface {
	Next(ctx context.Context, year int) (int, error)
}

// SequencerFunc позволяет использовать функцию как Sequencer
type SequencerFunc func(ctx context.Context, year int) (int, error)

func (f SequencerFunc) Next(ctx context.Context, year int) (int, error) {
	return f(ctx, year)
}

// AssignCaseID формирует идентификатор вида PRS-SOS-<год>-<номер>
func AssignCaseID(ctx context.Context, now time.Time, seq Sequencer) (string, error) {
	year := now.UTC().Year()
	n, err := seq.Next(ctx, year)
	if err != nil {
		return "", fmt.Errorf("intake: next case sequence: %w", err)
	}
	if n < 1 || n > maxCaseSeq {
		return "", fmt.Errorf("intake: sequence %d for %d: %w", n, year, ErrSequenceExhausted)
	}
	return fmt.Sprintf("%s-%04d-%04d", caseIDPrefix, year, n), nil
}

// ValidCaseID проверяет формат идентификатора
func ValidCaseID(id string) bool {
	return caseIDPattern.MatchString(id)
}

// MemorySequencer - счетчик в памяти процесса, по одному на год
type MemorySequencer struct {
	mu   sync.Mutex
	last map[int]int
}

func NewMemorySequencer() *MemorySequencer {
	return &MemorySequencer{last: make(map[int]int)}
}

func (s *MemorySequencer) Next(_ context.Context, year int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last[year]++
	return s.last[year], nil
}
