package models

import (
	"time"

	"github.com/jvz16/SalonBookingService/internal/domain"
)

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name            string  `json:"name"`
	Category        *string `json:"category,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"` // По умолчанию 60
	Color           *string `json:"color,omitempty"`           // По умолчанию #0d6efd
	Active          *bool   `json:"active,omitempty"`          // По умолчанию true
}

// ToDomainService конвертирует request в domain модель
func (r *CreateServiceRequest) ToDomainService() *domain.Service {
	svc := &domain.Service{
		Name:            r.Name,
		Category:        r.Category,
		DurationMinutes: domain.DefaultServiceDurationMinutes,
		Color:           domain.DefaultServiceColor,
		Active:          true,
	}

	if r.DurationMinutes != nil {
		svc.DurationMinutes = *r.DurationMinutes
	}
	if r.Color != nil && *r.Color != "" {
		svc.Color = *r.Color
	}
	if r.Active != nil {
		svc.Active = *r.Active
	}

	return svc
}

// UpdateServiceRequest запрос на обновление услуги.
// Не указанные поля сохраняют текущее значение.
type UpdateServiceRequest struct {
	Name            *string `json:"name,omitempty"`
	Category        *string `json:"category,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	Color           *string `json:"color,omitempty"`
	Active          *bool   `json:"active,omitempty"`
}

// ApplyTo накладывает изменения на текущую доменную модель
func (r *UpdateServiceRequest) ApplyTo(svc *domain.Service) *domain.Service {
	updated := *svc

	if r.Name != nil {
		updated.Name = *r.Name
	}
	if r.Category != nil {
		updated.Category = r.Category
	}
	if r.DurationMinutes != nil {
		updated.DurationMinutes = *r.DurationMinutes
	}
	if r.Color != nil {
		updated.Color = *r.Color
	}
	if r.Active != nil {
		updated.Active = *r.Active
	}

	return &updated
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Category        *string `json:"category,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Color           string  `json:"color"`
	Active          bool    `json:"active"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// Методы конвертации

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Category:        s.Category,
		DurationMinutes: s.DurationMinutes,
		Color:           s.DisplayColor(),
		Active:          s.Active,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	result := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		result = append(result, *FromDomainService(s))
	}
	return &ServiceListResponse{Services: result}
}
