package blackouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/jvz16/SalonBookingService/internal/domain"
	blockedSlotRepo "github.com/jvz16/SalonBookingService/internal/infra/storage/blockedslot"
	"github.com/jvz16/SalonBookingService/internal/service/blackouts/models"
)

// Service сервис для административного управления блокировками.
// Блокировки не проверяются на пересечение с существующими записями:
// закрытие дня с уже созданными записями - осознанное действие владелицы,
// сами записи при этом сохраняются.
type Service struct {
	blockedSlotRepo BlockedSlotRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(blockedSlotRepo BlockedSlotRepository, logger Logger) *Service {
	return &Service{
		blockedSlotRepo: blockedSlotRepo,
		logger:          logger,
	}
}

// Create создает блокировку одной из трех форм: весь день, диапазон, точка
func (s *Service) Create(ctx context.Context, req *models.CreateBlockedSlotRequest) (*models.BlockedSlotResponse, error) {
	block, err := req.ToDomainBlockedSlot()
	if err != nil {
		s.logger.Warn("Create: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := validateBlock(block); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.blockedSlotRepo.Create(ctx, block)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created blocked slot id=%d, date=%s",
		created.ID, created.Date.Format(domain.DateFormat))
	return models.FromDomainBlockedSlot(created), nil
}

// GetByID получает блокировку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BlockedSlotResponse, error) {
	block, err := s.blockedSlotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, blockedSlotRepo.ErrBlockedSlotNotFound) {
			s.logger.Warn("GetByID: blocked slot id=%d not found", id)
			return nil, ErrBlockedSlotNotFound
		}
		s.logger.Error("GetByID: repository error for blocked slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockedSlot(block), nil
}

// List получает блокировки за период. Без границ возвращает все.
func (s *Service) List(ctx context.Context, req *models.ListBlockedSlotsRequest) (*models.BlockedSlotListResponse, error) {
	blocks, err := s.blockedSlotRepo.ListWithRange(ctx, req.From, req.To)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d blocked slots", len(blocks))
	return models.FromDomainBlockedSlotList(blocks), nil
}

// Update заменяет блокировку целиком, включая форму
func (s *Service) Update(ctx context.Context, id int64, req *models.CreateBlockedSlotRequest) (*models.BlockedSlotResponse, error) {
	block, err := req.ToDomainBlockedSlot()
	if err != nil {
		s.logger.Warn("Update: invalid request for blocked slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := validateBlock(block); err != nil {
		s.logger.Warn("Update: validation failed for blocked slot id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.blockedSlotRepo.Update(ctx, id, block)
	if err != nil {
		if errors.Is(err, blockedSlotRepo.ErrBlockedSlotNotFound) {
			s.logger.Warn("Update: blocked slot id=%d not found", id)
			return nil, ErrBlockedSlotNotFound
		}
		s.logger.Error("Update: repository error for blocked slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated blocked slot id=%d", id)
	return models.FromDomainBlockedSlot(updated), nil
}

// Delete удаляет блокировку
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting blocked slot id=%d", id)

	if err := s.blockedSlotRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockedSlotRepo.ErrBlockedSlotNotFound) {
			s.logger.Warn("Delete: blocked slot id=%d not found", id)
			return ErrBlockedSlotNotFound
		}
		s.logger.Error("Delete: repository error for blocked slot id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted blocked slot id=%d", id)
	return nil
}

// validateBlock проверяет инварианты блокировки
func validateBlock(block *domain.BlockedSlot) error {
	if block.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(block.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	if err := block.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}
