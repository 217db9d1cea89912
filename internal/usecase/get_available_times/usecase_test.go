package get_available_times

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvz16/SalonBookingService/internal/domain"
	serviceRepo "github.com/jvz16/SalonBookingService/internal/infra/storage/service"
	"github.com/jvz16/SalonBookingService/pkg/ptr"
	"github.com/jvz16/SalonBookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (s *stubAppointmentRepo) ListByDate(context.Context, time.Time) ([]*domain.Appointment, error) {
	return s.appointments, s.err
}

type stubBlockedSlotRepo struct {
	blocks []*domain.BlockedSlot
	err    error
}

func (s *stubBlockedSlotRepo) ListByDate(context.Context, time.Time) ([]*domain.BlockedSlot, error) {
	return s.blocks, s.err
}

type stubServiceRepo struct {
	service *domain.Service
	err     error
}

func (s *stubServiceRepo) GetByID(context.Context, int64) (*domain.Service, error) {
	return s.service, s.err
}

func newTestUseCase(appts *stubAppointmentRepo, blocks *stubBlockedSlotRepo, services *stubServiceRepo) *UseCase {
	return NewUseCase(appts, blocks, services, domain.DefaultBusinessHours(), nopLogger{})
}

func TestExecute_NoFilters(t *testing.T) {
	uc := newTestUseCase(&stubAppointmentRepo{}, &stubBlockedSlotRepo{}, &stubServiceRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Len(t, resp.Times, 13)
}

func TestExecute_ServiceDurationApplied(t *testing.T) {
	services := &stubServiceRepo{service: &domain.Service{
		ID:              5,
		Name:            "Tinte",
		DurationMinutes: 120,
		Active:          true,
	}}
	uc := newTestUseCase(&stubAppointmentRepo{}, &stubBlockedSlotRepo{}, services)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		ServiceID: ptr.Ptr(int64(5)),
	})

	require.NoError(t, err)
	// 19:00 and 20:00 cannot fit a two-hour service
	assert.NotContains(t, resp.Times, types.TimeString("19:00"))
	assert.NotContains(t, resp.Times, types.TimeString("20:00"))
	assert.Contains(t, resp.Times, types.TimeString("18:00"))
}

func TestExecute_ServiceNotFound(t *testing.T) {
	services := &stubServiceRepo{err: serviceRepo.ErrServiceNotFound}
	uc := newTestUseCase(&stubAppointmentRepo{}, &stubBlockedSlotRepo{}, services)

	_, err := uc.Execute(context.Background(), &Request{
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		ServiceID: ptr.Ptr(int64(99)),
	})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InactiveServiceTreatedAsNotFound(t *testing.T) {
	services := &stubServiceRepo{service: &domain.Service{ID: 5, Name: "Tinte", DurationMinutes: 60}}
	uc := newTestUseCase(&stubAppointmentRepo{}, &stubBlockedSlotRepo{}, services)

	_, err := uc.Execute(context.Background(), &Request{
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		ServiceID: ptr.Ptr(int64(5)),
	})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_FullDayBlockSkipsAppointmentsQuery(t *testing.T) {
	appts := &stubAppointmentRepo{err: errors.New("must not be called")}
	blocks := &stubBlockedSlotRepo{blocks: []*domain.BlockedSlot{{}}}
	uc := newTestUseCase(appts, blocks, &stubServiceRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Times)
}

func TestExecute_ValidatesRequest(t *testing.T) {
	uc := newTestUseCase(&stubAppointmentRepo{}, &stubBlockedSlotRepo{}, &stubServiceRepo{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		ServiceID: ptr.Ptr(int64(-1)),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryErrorWrapped(t *testing.T) {
	blocks := &stubBlockedSlotRepo{err: errors.New("boom")}
	uc := newTestUseCase(&stubAppointmentRepo{}, blocks, &stubServiceRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrInternal)
}
