package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/sos_intake_service/internal/config"
	"github.com/shenikar/sos_intake_service/internal/geotag"
	"github.com/shenikar/sos_intake_service/internal/intake"
	"github.com/shenikar/sos_intake_service/internal/models"
	"github.com/shenikar/sos_intake_service/internal/notify"
	notify_mocks "github.com/shenikar/sos_intake_service/internal/notify/mocks"
	"github.com/shenikar/sos_intake_service/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testCaseService struct {
	service   *caseService
	repo      *mocks.MockCaseRepository
	evidence  *mocks.MockEvidenceStore
	publisher *notify_mocks.MockPublisher
}

// newTestCaseService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestCaseService(t *testing.T) testCaseService {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockCaseRepository(ctrl)
	evidenceMock := mocks.NewMockEvidenceStore(ctrl)
	publisherMock := notify_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		SLASweepBatch: 50,
	}

	svc := NewCaseService(repoMock, evidenceMock, publisherMock, logger, cfg)
	return testCaseService{
		service:   svc.(*caseService),
		repo:      repoMock,
		evidence:  evidenceMock,
		publisher: publisherMock,
	}
}

func TestSubmitCase_Orange_NoNotifications(t *testing.T) {
	// Подготовка
	ts := newTestCaseService(t)
	ctx := context.Background()
	year := time.Now().UTC().Year()

	// Ожидания
	ts.repo.EXPECT().NextCaseSeq(ctx, year).Return(7, nil).Times(1)
	ts.repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Case) error {
			assert.Equal(t, models.StatusSubmitted, c.Status)
			assert.Equal(t, "24h response to triage", c.SLA)
			assert.Equal(t, c.CreatedAt.Add(24*time.Hour), c.DueAt)
			return nil
		}).
		Times(1)
	ts.repo.EXPECT().SetCaseCache(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	c, err := ts.service.SubmitCase(ctx, intake.Input{
		Severity:    models.SeverityOrange,
		Description: "Payment delay issue reported by intern",
	})

	// Проверки
	require.NoError(t, err)
	assert.Regexp(t, `^PRS-SOS-\d{4}-0007$`, c.CaseID)
	assert.Equal(t, models.SeverityOrange, c.Severity)
	assert.Empty(t, c.Evidence)
	assert.Nil(t, c.Latitude)
}

func TestSubmitCase_Red_PublishesEmergencyAndConfirmation(t *testing.T) {
	// Подготовка
	ts := newTestCaseService(t)
	ctx := context.Background()
	point, ok := geotag.Normalize(19.076, 72.8777)
	require.True(t, ok)

	// Ожидания
	ts.repo.EXPECT().NextCaseSeq(ctx, gomock.Any()).Return(1, nil)
	ts.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	ts.repo.EXPECT().SetCaseCache(ctx, gomock.Any()).Return(nil)

	var kinds []string
	ts.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e notify.Event) error {
			kinds = append(kinds, e.Kind)
			assert.Equal(t, models.SeverityRed, e.Severity)
			return nil
		}).
		Times(2)

	// Действие
	c, err := ts.service.SubmitCase(ctx, intake.Input{
		Severity:     models.SeverityRed,
		Description:  "Harassment at workplace",
		GeoTagged:    true,
		Location:     &point,
		ReporterID:   "intern-42",
		ContactEmail: "intern@example.com",
	})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, []string{notify.KindEmergency, notify.KindConfirmation}, kinds)
	require.NotNil(t, c.Latitude)
	assert.InDelta(t, 19.076, *c.Latitude, 1e-9)
	assert.Equal(t, point.Cell, c.GeoCell)
	assert.Equal(t, c.CreatedAt, c.DueAt)
}

func TestSubmitCase_PublishFailureDoesNotFailSubmission(t *testing.T) {
	// Подготовка
	ts := newTestCaseService(t)
	ctx := context.Background()

	// Ожидания
	ts.repo.EXPECT().NextCaseSeq(ctx, gomock.Any()).Return(3, nil)
	ts.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	ts.repo.EXPECT().SetCaseCache(ctx, gomock.Any()).Return(errors.New("redis down"))
	ts.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down"))

	// Действие
	c, err := ts.service.SubmitCase(ctx, intake.Input{
		Severity:    models.SeverityRed,
		Description: "Unsafe conditions at the site",
	})

	// Проверки
	require.NoError(t, err)
	assert.NotEmpty(t, c.CaseID)
}

func TestSubmitCase_ValidationError(t *testing.T) {
	// Подготовка
	ts := newTestCaseService(t)
	ctx := context.Background()

	// Ожидания: ни счетчик, ни бд не вызываются

	// Действие
	c, err := ts.service.SubmitCase(ctx, intake.Input{
		Severity:    "PURPLE",
		Description: "Some long enough description",
	})

	// Проверки
	assert.Nil(t, c)
	var vErr *intake.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, intake.CodeInvalidSeverity, vErr.Code)
}

func TestSubmitCase_SequenceExhausted(t *testing.T) {
	// Подготовка
	ts := newTestCaseService(t)
	ctx := context.Background()

	// Ожидания
	ts.repo.EXPECT().NextCaseSeq(ctx, gomock.Any()).Return(10000, nil)

	// Действие
	c, err := ts.service.SubmitCase(ctx, intake.Input{
		Severity:    models.SeverityGreen,
		Description: "Question about certificate verification",
	})

	// Проверки
	assert.Nil(t, c)
	assert.ErrorIs(t, err, intake.ErrSequenceExhausted)
}

func TestSubmitCase_RepositoryError(t *testing.T) {
	// Подготовка
	ts := newTestCaseService(t)
	ctx := context.Background()
	dbErr := errors.New("database is down")

	// Ожидания
	ts.repo.EXPECT().NextCaseSeq(ctx, gomock.Any()).Return(5, nil)
	ts.repo.EXPECT().Create(ctx, gomock.Any()).Return(dbErr)

	// Действие
	c, err := ts.service.SubmitCase(ctx, intake.Input{
		Severity:    models.SeverityGreen,
		Description: "Question about certificate verification",
	})

	// Проверки
	assert.Nil(t, c)
	assert.ErrorIs(t, err, dbErr)
}

func TestSubmitCase_StoresEvidence(t *testing.T) {
	// Подготовка
	ts := newTestCaseService(t)
	ctx := context.Background()
	open := func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader("png-bytes")), nil
	}

	// Ожидания
	ts.repo.EXPECT().NextCaseSeq(ctx, gomock.Any()).Return(9, nil)
	ts.evidence.EXPECT().
		Put(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, caseID string, a intake.Attachment) (*models.Evidence, error) {
			if a.Filename == "broken.jpg" {
				return nil, errors.New("minio unavailable")
			}
			return &models.Evidence{
				Filename:    a.Filename,
				ContentType: a.ContentType,
				ByteSize:    9,
				StorageKey:  "cases/" + caseID + "/x-" + a.Filename,
				Checksum:    "abc",
			}, nil
		}).
		Times(2)
	ts.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	ts.repo.EXPECT().SetCaseCache(ctx, gomock.Any()).Return(nil)

	// Действие
	c, err := ts.service.SubmitCase(ctx, intake.Input{
		Severity:    models.SeverityGreen,
		Description: "Screenshots of the offer letter",
		Evidence: []intake.Attachment{
			{Filename: "offer.png", Size: 9, ContentType: "image/png", Open: open},
			{Filename: "huge.mov", Size: intake.MaxEvidenceBytes + 1, Open: open},
			{Filename: "broken.jpg", Size: 4, ContentType: "image/jpeg", Open: open},
			{Filename: "meta-only.pdf", Size: 100},
		},
	})

	// Проверки
	require.NoError(t, err)
	require.Len(t, c.Evidence, 3)
	assert.Equal(t, 1, c.DroppedEvidence)

	assert.True(t, c.Evidence[0].Stored())
	assert.Equal(t, 0, c.Evidence[0].Position)
	assert.False(t, c.Evidence[1].Stored())
	assert.Equal(t, "broken.jpg", c.Evidence[1].Filename)
	assert.Equal(t, int64(4), c.Evidence[1].ByteSize)
	assert.False(t, c.Evidence[2].Stored())
	assert.Equal(t, 2, c.Evidence[2].Position)
	for _, ev := range c.Evidence {
		assert.NotEqual(t, uuid.Nil, ev.ID)
		assert.Equal(t, c.CaseID, ev.CaseID)
	}
}

func TestSubmitCase_RepositoryError_RemovesStoredEvidence(t *testing.T) {
	// Подготовка
	ts := newTestCaseService(t)
	ctx := context.Background()
	open := func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader("png-bytes")), nil
	}
	dbErr := errors.New("connection reset")
	storedKey := "cases/PRS-SOS-2025-0009/x-offer.png"

	// Ожидания
	ts.repo.EXPECT().NextCaseSeq(ctx, gomock.Any()).Return(9, nil)
	ts.evidence.EXPECT().
		Put(ctx, gomock.Any(), gomock.Any()).
		Return(&models.Evidence{Filename: "offer.png", ByteSize: 9, StorageKey: storedKey}, nil)
	ts.repo.EXPECT().Create(ctx, gomock.Any()).Return(dbErr)
	ts.evidence.EXPECT().Remove(ctx, storedKey).Return(errors.New("bucket unavailable")).Times(1)
	ts.repo.EXPECT().SetCaseCache(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	c, err := ts.service.SubmitCase(ctx, intake.Input{
		Severity:    models.SeverityGreen,
		Description: "Screenshots of the offer letter",
		Evidence: []intake.Attachment{
			{Filename: "offer.png", Size: 9, ContentType: "image/png", Open: open},
			{Filename: "meta-only.pdf", Size: 100},
		},
	})

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, c)
}

func TestGetCase_Success_FromCache(t *testing.T) {
	// Подготовка
	ts := newTestCaseService(t)
	ctx := context.Background()
	expected := &models.Case{CaseID: "PRS-SOS-2025-0001"}

	// Ожидания
	ts.repo.EXPECT().GetCaseFromCache(ctx, expected.CaseID).Return(expected, nil).Times(1)

	// Действие
	c, err := ts.service.GetCase(ctx, expected.CaseID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, c)
}

func TestGetCase_Success_FromDB(t *testing.T) {
	// Подготовка
	ts := newTestCaseService(t)
	ctx := context.Background()
	expected := &models.Case{CaseID: "PRS-SOS-2025-0002"}

	// Ожидания
	// 1. Промах кеша
	ts.repo.EXPECT().GetCaseFromCache(ctx, expected.CaseID).Return(nil, nil)
	// 2. Попадание в БД
	ts.repo.EXPECT().GetByCaseID(ctx, expected.CaseID).Return(expected, nil)
	// 3. Запись в кеш
	ts.repo.EXPECT().SetCaseCache(ctx, expected).Return(nil)

	// Действие
	c, err := ts.service.GetCase(ctx, expected.CaseID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, c)
}

func TestGetCase_NotFound(t *testing.T) {
	// Подготовка
	ts := newTestCaseService(t)
	ctx := context.Background()
	caseID := "PRS-SOS-2025-0404"

	// Ожидания
	ts.repo.EXPECT().GetCaseFromCache(ctx, caseID).Return(nil, nil)
	ts.repo.EXPECT().GetByCaseID(ctx, caseID).Return(nil, ErrCaseNotFound)

	// Действие
	c, err := ts.service.GetCase(ctx, caseID)

	// Проверки
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrCaseNotFound)
}

func TestListCases_NormalizesPagination(t *testing.T) {
	// Подготовка
	ts := newTestCaseService(t)
	ctx := context.Background()

	// Ожидания
	ts.repo.EXPECT().
		ListCases(ctx, models.CaseFilter{Severity: models.SeverityRed, Page: 1, PageSize: 20}).
		Return([]*models.Case{}, nil).
		Times(1)

	// Действие
	cases, err := ts.service.ListCases(ctx, models.CaseFilter{Severity: models.SeverityRed, Page: 0, PageSize: 500})

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, cases)
}

func TestApplyAction_Transitions(t *testing.T) {
	testCases := []struct {
		name    string
		status  string
		action  string
		want    string
		wantErr error
	}{
		{"accept submitted", models.StatusSubmitted, models.ActionAccept, models.StatusUnderReview, nil},
		{"escalate under review", models.StatusUnderReview, models.ActionEscalate, models.StatusEscalated, nil},
		{"resolve escalated", models.StatusEscalated, models.ActionResolve, models.StatusResolved, nil},
		{"accept escalated", models.StatusEscalated, models.ActionAccept, "", ErrInvalidTransition},
		{"resolve resolved", models.StatusResolved, models.ActionResolve, "", ErrInvalidTransition},
		{"escalate escalated", models.StatusEscalated, models.ActionEscalate, "", ErrInvalidTransition},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Подготовка
			ts := newTestCaseService(t)
			ctx := context.Background()
			caseID := "PRS-SOS-2025-0010"
			existing := &models.Case{CaseID: caseID, Severity: models.SeverityOrange, Status: tc.status}

			// Ожидания
			ts.repo.EXPECT().GetByCaseID(ctx, caseID).Return(existing, nil)
			if tc.wantErr == nil {
				ts.repo.EXPECT().
					UpdateStatus(ctx, caseID, tc.status, tc.want, gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _, _ string, e *models.CaseEvent) error {
						assert.Equal(t, tc.action, e.Action)
						assert.Equal(t, "officer-1", e.Actor)
						assert.Equal(t, tc.want, e.Status)
						return nil
					})
				ts.repo.EXPECT().InvalidateCaseCache(ctx, caseID).Return(nil)
				if tc.want == models.StatusEscalated {
					ts.publisher.EXPECT().
						Publish(ctx, gomock.Any()).
						DoAndReturn(func(_ context.Context, e notify.Event) error {
							assert.Equal(t, notify.KindEscalation, e.Kind)
							assert.Equal(t, "officer-1", e.Actor)
							return nil
						})
				}
			}

			// Действие
			c, err := ts.service.ApplyAction(ctx, caseID, tc.action, "officer-1")

			// Проверки
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, c.Status)
		})
	}
}

func TestApplyAction_UnknownAction(t *testing.T) {
	// Подготовка
	ts := newTestCaseService(t)

	// Действие
	c, err := ts.service.ApplyAction(context.Background(), "PRS-SOS-2025-0001", "delete", "officer-1")

	// Проверки
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestApplyAction_CaseNotFound(t *testing.T) {
	// Подготовка
	ts := newTestCaseService(t)
	ctx := context.Background()

	// Ожидания
	ts.repo.EXPECT().GetByCaseID(ctx, "PRS-SOS-2025-0404").Return(nil, ErrCaseNotFound)

	// Действие
	_, err := ts.service.ApplyAction(ctx, "PRS-SOS-2025-0404", models.ActionAccept, "officer-1")

	// Проверки
	assert.ErrorIs(t, err, ErrCaseNotFound)
}

func TestListEvents_Success(t *testing.T) {
	// Подготовка
	ts := newTestCaseService(t)
	ctx := context.Background()
	caseID := "PRS-SOS-2025-0003"
	events := []*models.CaseEvent{
		{CaseID: caseID, Action: models.ActionSubmit, Status: models.StatusSubmitted},
		{CaseID: caseID, Action: models.ActionAccept, Status: models.StatusUnderReview},
	}

	// Ожидания
	ts.repo.EXPECT().GetByCaseID(ctx, caseID).Return(&models.Case{CaseID: caseID}, nil)
	ts.repo.EXPECT().ListEvents(ctx, caseID).Return(events, nil)

	// Действие
	got, err := ts.service.ListEvents(ctx, caseID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, events, got)
}

func TestGetStats_Success(t *testing.T) {
	// Подготовка
	ts := newTestCaseService(t)
	ctx := context.Background()
	stats := &models.CaseStats{
		BySeverity: map[models.Severity]int{models.SeverityRed: 2},
		ByStatus:   map[string]int{models.StatusSubmitted: 2},
		Overdue:    1,
	}

	// Ожидания
	ts.repo.EXPECT().GetStats(ctx, gomock.Any()).Return(stats, nil)

	// Действие
	got, err := ts.service.GetStats(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, stats, got)
}

func TestEvidenceURL(t *testing.T) {
	storedID := uuid.New()
	metaID := uuid.New()
	caseID := "PRS-SOS-2025-0004"
	c := &models.Case{
		CaseID: caseID,
		Evidence: []*models.Evidence{
			{ID: storedID, Filename: "a.png", StorageKey: "cases/" + caseID + "/k-a.png"},
			{ID: metaID, Filename: "b.pdf"},
		},
	}

	t.Run("stored", func(t *testing.T) {
		ts := newTestCaseService(t)
		ctx := context.Background()
		ts.repo.EXPECT().GetCaseFromCache(ctx, caseID).Return(c, nil)
		ts.evidence.EXPECT().
			PresignedURL(ctx, "cases/"+caseID+"/k-a.png", "a.png").
			Return("https://minio/presigned", nil)

		url, err := ts.service.EvidenceURL(ctx, caseID, storedID)

		require.NoError(t, err)
		assert.Equal(t, "https://minio/presigned", url)
	})

	t.Run("metadata only", func(t *testing.T) {
		ts := newTestCaseService(t)
		ctx := context.Background()
		ts.repo.EXPECT().GetCaseFromCache(ctx, caseID).Return(c, nil)

		_, err := ts.service.EvidenceURL(ctx, caseID, metaID)

		assert.ErrorIs(t, err, ErrEvidenceNotStored)
	})

	t.Run("unknown evidence", func(t *testing.T) {
		ts := newTestCaseService(t)
		ctx := context.Background()
		ts.repo.EXPECT().GetCaseFromCache(ctx, caseID).Return(c, nil)

		_, err := ts.service.EvidenceURL(ctx, caseID, uuid.New())

		assert.ErrorIs(t, err, ErrEvidenceNotFound)
	})
}

func TestEscalateOverdue(t *testing.T) {
	// Подготовка
	ts := newTestCaseService(t)
	ctx := context.Background()
	now := time.Date(2025, time.October, 3, 9, 0, 0, 0, time.UTC)
	overdue := []*models.Case{
		{CaseID: "PRS-SOS-2025-0001", Status: models.StatusSubmitted},
		{CaseID: "PRS-SOS-2025-0002", Status: models.StatusSubmitted},
	}

	// Ожидания
	ts.repo.EXPECT().ListOverdue(ctx, now, 50).Return(overdue, nil)

	// первое обращение эскалируется
	ts.repo.EXPECT().GetByCaseID(ctx, "PRS-SOS-2025-0001").
		Return(&models.Case{CaseID: "PRS-SOS-2025-0001", Status: models.StatusSubmitted}, nil)
	ts.repo.EXPECT().
		UpdateStatus(ctx, "PRS-SOS-2025-0001", models.StatusSubmitted, models.StatusEscalated, gomock.Any()).
		Return(nil)
	ts.repo.EXPECT().InvalidateCaseCache(ctx, "PRS-SOS-2025-0001").Return(nil)
	ts.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	// второе уже взяли в работу и решили
	ts.repo.EXPECT().GetByCaseID(ctx, "PRS-SOS-2025-0002").
		Return(&models.Case{CaseID: "PRS-SOS-2025-0002", Status: models.StatusResolved}, nil)

	// Действие
	n, err := ts.service.EscalateOverdue(ctx, now)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestEscalateOverdue_RepositoryError(t *testing.T) {
	// Подготовка
	ts := newTestCaseService(t)
	ctx := context.Background()
	now := time.Now().UTC()

	// Ожидания
	ts.repo.EXPECT().ListOverdue(ctx, now, 50).Return(nil, errors.New("timeout"))

	// Действие
	n, err := ts.service.EscalateOverdue(ctx, now)

	// Проверки
	assert.Error(t, err)
	assert.Zero(t, n)
}
