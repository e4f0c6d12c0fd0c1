package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// OverdueEscalator эскалирует обращения с истекшим сроком реакции
type OverdueEscalator interface {
	EscalateOverdue(ctx context.Context, now time.Time) (int, error)
}

// SLAMonitor периодически запускает проверку сроков по расписанию cron
type SLAMonitor struct {
	cron      *cron.Cron
	escalator OverdueEscalator
	logger    *logrus.Logger
	now       func() time.Time

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
}

// NewSLAMonitor принимает стандартное cron-выражение или дескриптор вида "@every 1m"
func NewSLAMonitor(escalator OverdueEscalator, logger *logrus.Logger, schedule string) (*SLAMonitor, error) {
	m := &SLAMonitor{
		escalator: escalator,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
		ctx:       context.Background(),
	}
	m.cron = cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(
			cron.Recover(cron.PrintfLogger(logger)),
			cron.SkipIfStillRunning(cron.PrintfLogger(logger)),
		),
	)
	if _, err := m.cron.AddFunc(schedule, m.runJob); err != nil {
		return nil, fmt.Errorf("invalid sla sweep schedule %q: %w", schedule, err)
	}
	return m, nil
}

// Start запускает планировщик; проверки прекращаются при отмене ctx или вызове Stop
func (m *SLAMonitor) Start(ctx context.Context) {
	m.mu.Lock()
	m.ctx, m.cancel = context.WithCancel(ctx)
	m.mu.Unlock()

	m.cron.Start()
	m.logger.Info("SLA monitor started")
}

// Stop останавливает планировщик и ждет завершения текущей проверки
func (m *SLAMonitor) Stop(ctx context.Context) error {
	m.mu.Lock()
	if m.cancel != nil {
		m.cancel()
	}
	m.mu.Unlock()

	select {
	case <-m.cron.Stop().Done():
		m.logger.Info("SLA monitor stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *SLAMonitor) runJob() {
	m.mu.Lock()
	ctx := m.ctx
	m.mu.Unlock()

	m.Sweep(ctx)
}

// Sweep выполняет одну проверку сроков
func (m *SLAMonitor) Sweep(ctx context.Context) int {
	if ctx.Err() != nil {
		return 0
	}
	log := m.logger.WithField("component", "sla_monitor")

	n, err := m.escalator.EscalateOverdue(ctx, m.now())
	if err != nil {
		log.WithError(err).Error("SLA sweep finished with errors")
	}
	if n > 0 {
		log.WithField("escalated", n).Warn("Cases escalated after SLA breach")
	}
	return n
}
