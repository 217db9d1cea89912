package whatsapp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config параметры клиента. Учетные данные Twilio читаются из окружения
// (TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN), чтобы не хранить секреты в файле.
type Config struct {
	Enabled        bool
	BaseURL        string
	From           string // "whatsapp:+14155238886"
	OwnerNumber    string // "whatsapp:+506XXXXXXXX"
	SalonName      string
	DefaultCountry string
	Timeout        time.Duration
}

// Client клиент отправки WhatsApp-сообщений через Twilio Messages API.
// Работает в best-effort режиме: без учетных данных каждая отправка
// возвращает ErrNotConfigured, но не паникует и не блокирует бронирование.
type Client struct {
	cfg        Config
	accountSID string
	authToken  string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр WhatsApp-клиента
func NewClient(cfg Config, log Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.twilio.com"
	}

	return &Client{
		cfg:        cfg,
		accountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		authToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: log,
	}
}

// SendBookingConfirmation отправляет подтверждение клиенту и владелице
// сразу после создания записи. Каждый адресат обрабатывается независимо.
func (c *Client) SendBookingConfirmation(ctx context.Context, booking BookingContext) error {
	dstr := formatDate(booking.Date)
	tstr := booking.StartTime.String()

	bodyClient := fmt.Sprintf(
		"¡Hola %s! Tu cita en %s fue confirmada.\n"+
			"• Servicio: %s\n"+
			"• Fecha: %s a las %s\n\n"+
			"Si necesitás cambiarla, respondé a este WhatsApp.",
		booking.CustomerName, c.cfg.SalonName, booking.ServiceName, dstr, tstr,
	)

	bodyOwner := fmt.Sprintf(
		"Nueva reserva en %s\n"+
			"Cliente: %s (%s)\n"+
			"Servicio: %s\n"+
			"Fecha: %s %s",
		c.cfg.SalonName, booking.CustomerName, booking.CustomerPhone, booking.ServiceName, dstr, tstr,
	)

	return c.sendToBoth(ctx, booking.CustomerPhone, bodyClient, bodyOwner)
}

// SendReminder отправляет напоминание о завтрашней записи клиенту и владелице
func (c *Client) SendReminder(ctx context.Context, booking BookingContext) error {
	dstr := formatDate(booking.Date)
	tstr := booking.StartTime.String()

	bodyClient := fmt.Sprintf(
		"Recordatorio de cita para mañana en %s\n"+
			"• %s\n"+
			"• %s a las %s\n\n"+
			"Si necesitás reprogramar, respondé a este WhatsApp.",
		c.cfg.SalonName, booking.ServiceName, dstr, tstr,
	)

	bodyOwner := fmt.Sprintf(
		"Recordatorio: Mañana %s %s\n"+
			"%s (%s) – %s",
		dstr, tstr, booking.CustomerName, booking.CustomerPhone, booking.ServiceName,
	)

	return c.sendToBoth(ctx, booking.CustomerPhone, bodyClient, bodyOwner)
}

// sendToBoth отправляет сообщение клиенту и владелице; ошибки собираются,
// отправка одному адресату не блокирует другого
func (c *Client) sendToBoth(ctx context.Context, customerPhone, bodyClient, bodyOwner string) error {
	// Выключенные уведомления - не ошибка
	if !c.cfg.Enabled {
		return nil
	}

	var errs []string

	toClient := normalizePhone(customerPhone, c.cfg.DefaultCountry)
	if toClient == "" {
		c.log.Warn("WhatsApp: cannot normalize customer phone %q, skipping client message", customerPhone)
		errs = append(errs, ErrInvalidPhone.Error())
	} else if err := c.send(ctx, toClient, bodyClient); err != nil {
		errs = append(errs, fmt.Sprintf("client: %v", err))
	}

	if c.cfg.OwnerNumber != "" {
		if err := c.send(ctx, c.cfg.OwnerNumber, bodyOwner); err != nil {
			errs = append(errs, fmt.Sprintf("owner: %v", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrSendFailed, strings.Join(errs, "; "))
	}
	return nil
}

// send отправляет одно сообщение через Twilio Messages API
func (c *Client) send(ctx context.Context, to, body string) error {
	if c.accountSID == "" || c.authToken == "" || c.cfg.From == "" {
		return ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.cfg.BaseURL, c.accountSID)

	form := url.Values{}
	form.Set("From", c.cfg.From)
	form.Set("To", to)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var twilioResp twilioMessageResponse
		if err := json.NewDecoder(resp.Body).Decode(&twilioResp); err == nil && twilioResp.ErrorMessage != nil {
			return fmt.Errorf("%w: status %d: %s", ErrSendFailed, resp.StatusCode, *twilioResp.ErrorMessage)
		}
		return fmt.Errorf("%w: unexpected status code %d", ErrSendFailed, resp.StatusCode)
	}

	c.log.Info("WhatsApp: message sent to %s", to)
	return nil
}
