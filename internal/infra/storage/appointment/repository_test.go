package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvz16/SalonBookingService/internal/domain"
	"github.com/jvz16/SalonBookingService/pkg/ptr"
	"github.com/jvz16/SalonBookingService/pkg/types"
)

func newRepoMock(t *testing.T) (*Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewRepository(db), mock, func() { db.Close() }
}

func appointmentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "customer_name", "customer_phone", "service_id", "date", "start_time",
		"service_name", "service_duration_minutes", "service_color", "created_at",
	})
}

func TestRepository_Create(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Now()

	mock.ExpectQuery("INSERT INTO appointments").
		WithArgs("Ana", "88887777", int64(5), date, "10:00").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(42), createdAt))

	created, err := repo.Create(context.Background(), &domain.Appointment{
		CustomerName:  "Ana",
		CustomerPhone: "88887777",
		ServiceID:     ptr.Ptr(int64(5)),
		Date:          date,
		StartTime:     "10:00",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, createdAt, created.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_UniqueViolation(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectQuery("INSERT INTO appointments").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), &domain.Appointment{
		CustomerName:  "Ana",
		CustomerPhone: "88887777",
		Date:          time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     "10:00",
	})

	assert.ErrorIs(t, err, ErrSlotTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByDate(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	rows := appointmentRows().
		AddRow(int64(1), "Ana", "88887777", int64(5), date, "10:00", "Corte", 60, "#0d6efd", time.Now()).
		AddRow(int64(2), "Luz", "87770000", nil, date, "12:00", nil, nil, nil, time.Now())

	mock.ExpectQuery("SELECT a.id, a.customer_name, a.customer_phone").
		WithArgs(date).
		WillReturnRows(rows)

	appts, err := repo.ListByDate(context.Background(), date)

	require.NoError(t, err)
	require.Len(t, appts, 2)

	assert.Equal(t, types.TimeString("10:00"), appts[0].StartTime)
	require.NotNil(t, appts[0].ServiceDurationMinutes)
	assert.Equal(t, 60, *appts[0].ServiceDurationMinutes)

	// потерянная услуга: длительность по умолчанию
	assert.Nil(t, appts[1].ServiceID)
	assert.Equal(t, domain.DefaultServiceDurationMinutes, appts[1].Duration())

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectQuery("SELECT a.id, a.customer_name, a.customer_phone").
		WithArgs(int64(99)).
		WillReturnRows(appointmentRows())

	_, err := repo.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectExec("DELETE FROM appointments").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 42))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete_NotFound(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectExec("DELETE FROM appointments").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
