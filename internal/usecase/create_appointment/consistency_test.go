package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvz16/SalonBookingService/internal/domain"
	getAvailableTimes "github.com/jvz16/SalonBookingService/internal/usecase/get_available_times"
	"github.com/jvz16/SalonBookingService/pkg/ptr"
	"github.com/jvz16/SalonBookingService/pkg/types"
)

// Расчет свободных слотов рекомендательный, проверка при создании записи
// авторитетная. Оба пути применяют один канонический набор правил, поэтому
// при неизменном состоянии дня каждый слот из списка обязан проходить
// проверку, а каждый слот вне списка - отклоняться.
func TestFreeSlotsPassAuthoritativeValidation(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	hours := domain.DefaultBusinessHours()
	serviceDuration := 90

	blocks := []*domain.BlockedSlot{
		{ID: 1, Date: date, Time: "14:00"},
		{ID: 2, Date: date, StartTime: "12:00", EndTime: "13:00"},
	}
	appointments := []*domain.Appointment{
		{
			ID:                     1,
			CustomerName:           "Ana",
			CustomerPhone:          "88887777",
			Date:                   date,
			StartTime:              "10:00",
			ServiceDurationMinutes: ptr.Ptr(90),
		},
		{
			// Запись с потерянной услугой занимает 60 минут по умолчанию
			ID:            2,
			CustomerName:  "Luz",
			CustomerPhone: "87770000",
			Date:          date,
			StartTime:     "17:00",
		},
	}

	appointmentRepo := &stubAppointmentRepo{appointments: appointments}
	blockedSlotRepo := &stubBlockedSlotRepo{blocks: blocks}
	serviceRepo := &stubServiceRepo{service: &domain.Service{
		ID:              5,
		Name:            "Tinte",
		DurationMinutes: serviceDuration,
		Active:          true,
	}}

	advisory := getAvailableTimes.NewUseCase(
		appointmentRepo, blockedSlotRepo, serviceRepo, hours, nopLogger{})

	resp, err := advisory.Execute(context.Background(), &getAvailableTimes.Request{
		Date:      date,
		ServiceID: ptr.Ptr(int64(5)),
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Times)

	free := make(map[types.TimeString]bool, len(resp.Times))
	for _, slot := range resp.Times {
		free[slot] = true

		normalized, err := validateSlot(slot.String(), hours, blocks, appointments, serviceDuration)
		require.NoError(t, err, "advisory slot %s rejected by authoritative validation", slot)
		assert.Equal(t, slot, normalized)
	}

	// Обратное направление: слот вне списка обязан быть отклонен
	for _, candidate := range hours.CandidateSlots() {
		if free[candidate] {
			continue
		}
		_, err := validateSlot(candidate.String(), hours, blocks, appointments, serviceDuration)
		assert.Error(t, err, "slot %s absent from advisory list but passed validation", candidate)
	}
}

// Без указанной услуги рекомендательный список не учитывает длительность и
// включает слот часа закрытия, но при создании записи подставляется
// длительность по умолчанию и этот слот отклоняется.
func TestCloseHourSlotRejectedForDefaultDuration(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	hours := domain.DefaultBusinessHours()

	advisory := getAvailableTimes.NewUseCase(
		&stubAppointmentRepo{}, &stubBlockedSlotRepo{}, &stubServiceRepo{}, hours, nopLogger{})

	resp, err := advisory.Execute(context.Background(), &getAvailableTimes.Request{Date: date})
	require.NoError(t, err)
	assert.Contains(t, resp.Times, types.TimeString("20:00"))

	_, err = validateSlot("20:00", hours, nil, nil, domain.DefaultServiceDurationMinutes)
	assert.ErrorIs(t, err, ErrServiceDoesNotFit)

	// Последний укладывающийся слот проходит
	slot, err := validateSlot("19:00", hours, nil, nil, domain.DefaultServiceDurationMinutes)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("19:00"), slot)
}
