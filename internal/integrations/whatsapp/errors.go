package whatsapp

import "errors"

var (
	// ErrNotConfigured возвращается, когда клиент работает без учетных данных.
	// Уведомления best-effort: вызывающая сторона логирует и продолжает.
	ErrNotConfigured = errors.New("whatsapp client: credentials not configured")

	// ErrInvalidPhone возвращается, когда номер телефона не удалось нормализовать
	ErrInvalidPhone = errors.New("whatsapp client: invalid phone number")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("whatsapp client: internal error")

	// ErrSendFailed возвращается, когда Twilio отклонил отправку сообщения
	ErrSendFailed = errors.New("whatsapp client: failed to send message")
)
