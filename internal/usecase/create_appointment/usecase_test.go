package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvz16/SalonBookingService/internal/domain"
	appointmentRepo "github.com/jvz16/SalonBookingService/internal/infra/storage/appointment"
	serviceRepo "github.com/jvz16/SalonBookingService/internal/infra/storage/service"
	"github.com/jvz16/SalonBookingService/internal/integrations/whatsapp"
	"github.com/jvz16/SalonBookingService/pkg/ptr"
	"github.com/jvz16/SalonBookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubAppointmentRepo struct {
	appointments []*domain.Appointment
	createErr    error
	created      *domain.Appointment
}

func (s *stubAppointmentRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	created := *a
	created.ID = 42
	created.CreatedAt = time.Now()
	s.created = &created
	return &created, nil
}

func (s *stubAppointmentRepo) ListByDate(context.Context, time.Time) ([]*domain.Appointment, error) {
	return s.appointments, nil
}

type stubBlockedSlotRepo struct {
	blocks []*domain.BlockedSlot
}

func (s *stubBlockedSlotRepo) ListByDate(context.Context, time.Time) ([]*domain.BlockedSlot, error) {
	return s.blocks, nil
}

type stubServiceRepo struct {
	service *domain.Service
	err     error
}

func (s *stubServiceRepo) GetByID(context.Context, int64) (*domain.Service, error) {
	return s.service, s.err
}

// passthroughTxManager выполняет колбэк без настоящей транзакции
type passthroughTxManager struct {
	calls int
}

func (m *passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type recordingNotifier struct {
	sent chan whatsapp.BookingContext
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{sent: make(chan whatsapp.BookingContext, 1)}
}

func (n *recordingNotifier) SendBookingConfirmation(_ context.Context, booking whatsapp.BookingContext) error {
	n.sent <- booking
	return nil
}

func validRequest() *Request {
	return &Request{
		CustomerName:  "Ana",
		CustomerPhone: "88887777",
		ServiceID:     ptr.Ptr(int64(5)),
		Date:          time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     "10:00",
	}
}

func activeService() *domain.Service {
	return &domain.Service{ID: 5, Name: "Corte", DurationMinutes: 60, Active: true}
}

func TestExecute_Success(t *testing.T) {
	repo := &stubAppointmentRepo{}
	txMgr := &passthroughTxManager{}
	notifier := newRecordingNotifier()

	uc := NewUseCase(repo, &stubBlockedSlotRepo{}, &stubServiceRepo{service: activeService()},
		notifier, txMgr, domain.DefaultBusinessHours(), nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("11:00"), resp.EndTime)
	require.NotNil(t, resp.ServiceName)
	assert.Equal(t, "Corte", *resp.ServiceName)
	assert.Equal(t, 1, txMgr.calls)

	// подтверждение уходит после коммита, в фоне
	select {
	case booking := <-notifier.sent:
		assert.Equal(t, "Ana", booking.CustomerName)
		assert.Equal(t, "Corte", booking.ServiceName)
		assert.Equal(t, types.TimeString("10:00"), booking.StartTime)
	case <-time.After(time.Second):
		t.Fatal("confirmation was not sent")
	}
}

func TestExecute_SlotConflictInsideTx(t *testing.T) {
	repo := &stubAppointmentRepo{
		appointments: []*domain.Appointment{{
			CustomerName:           "Luz",
			CustomerPhone:          "87770000",
			StartTime:              "10:00",
			ServiceDurationMinutes: ptr.Ptr(60),
		}},
	}

	uc := NewUseCase(repo, &stubBlockedSlotRepo{}, &stubServiceRepo{service: activeService()},
		newRecordingNotifier(), &passthroughTxManager{}, domain.DefaultBusinessHours(), nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Nil(t, repo.created)
}

func TestExecute_UniqueIndexViolationMapsToConflict(t *testing.T) {
	// гонка, проскочившая мимо проверки: уникальный индекс отдает ErrSlotTaken
	repo := &stubAppointmentRepo{createErr: appointmentRepo.ErrSlotTaken}

	uc := NewUseCase(repo, &stubBlockedSlotRepo{}, &stubServiceRepo{service: activeService()},
		newRecordingNotifier(), &passthroughTxManager{}, domain.DefaultBusinessHours(), nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := NewUseCase(&stubAppointmentRepo{}, &stubBlockedSlotRepo{},
		&stubServiceRepo{err: serviceRepo.ErrServiceNotFound},
		newRecordingNotifier(), &passthroughTxManager{}, domain.DefaultBusinessHours(), nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InactiveService(t *testing.T) {
	inactive := activeService()
	inactive.Active = false

	uc := NewUseCase(&stubAppointmentRepo{}, &stubBlockedSlotRepo{}, &stubServiceRepo{service: inactive},
		newRecordingNotifier(), &passthroughTxManager{}, domain.DefaultBusinessHours(), nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_NoServiceUsesDefaultDuration(t *testing.T) {
	repo := &stubAppointmentRepo{}
	notifier := newRecordingNotifier()

	uc := NewUseCase(repo, &stubBlockedSlotRepo{}, &stubServiceRepo{},
		notifier, &passthroughTxManager{}, domain.DefaultBusinessHours(), nopLogger{})

	req := validRequest()
	req.ServiceID = nil

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Nil(t, resp.ServiceName)
	assert.Equal(t, types.TimeString("11:00"), resp.EndTime)

	select {
	case booking := <-notifier.sent:
		assert.Equal(t, "Servicio", booking.ServiceName)
	case <-time.After(time.Second):
		t.Fatal("confirmation was not sent")
	}
}

func TestExecute_BlockedDayRejectsBeforeInsert(t *testing.T) {
	repo := &stubAppointmentRepo{}

	uc := NewUseCase(repo, &stubBlockedSlotRepo{blocks: []*domain.BlockedSlot{{}}},
		&stubServiceRepo{service: activeService()},
		newRecordingNotifier(), &passthroughTxManager{}, domain.DefaultBusinessHours(), nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrDayBlocked)
	assert.Nil(t, repo.created)
}
