package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInvalidTime возвращается, когда время не разбирается в формате HH:MM
	ErrInvalidTime = errors.New("create_appointment: invalid time format")

	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrDayBlocked возвращается, когда весь день закрыт для записи
	ErrDayBlocked = errors.New("create_appointment: day is blocked")

	// ErrSlotBlocked возвращается, когда время попало под точечную или диапазонную блокировку
	ErrSlotBlocked = errors.New("create_appointment: time slot is blocked")

	// ErrOutsideBusinessHours возвращается, когда время не является слотом рабочих часов
	ErrOutsideBusinessHours = errors.New("create_appointment: time is outside business hours")

	// ErrServiceDoesNotFit возвращается, когда услуга не успевает закончиться до закрытия
	ErrServiceDoesNotFit = errors.New("create_appointment: service does not fit before closing time")

	// ErrSlotConflict возвращается, когда время пересекается с существующей записью
	ErrSlotConflict = errors.New("create_appointment: time slot conflicts with an existing appointment")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
