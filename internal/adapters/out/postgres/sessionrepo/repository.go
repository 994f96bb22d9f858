package sessionrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/core/domain/model/session"
	"chapatis/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSessionRepository implements ports.SessionRepository using GORM.
type GormSessionRepository struct {
	db       *gorm.DB
	location *time.Location
}

// NewGormSessionRepository creates a repository over db. Stored dates are
// restored as local midnight in location.
func NewGormSessionRepository(db *gorm.DB, location *time.Location) *GormSessionRepository {
	if location == nil {
		location = time.UTC
	}
	return &GormSessionRepository{db: db, location: location}
}

// Add inserts a new session with its orders.
func (r *GormSessionRepository) Add(ctx context.Context, s *session.Session) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromDomain(s)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes the session row only if its stored version still equals
// s.Version(), and inserts orders not stored yet.
func (r *GormSessionRepository) Update(ctx context.Context, s *session.Session) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromDomain(s)
	db := r.db.WithContext(ctx)

	result := db.Model(&SessionDTO{}).
		Where("id = ? AND version = ?", dto.ID, s.Version()).
		Updates(map[string]any{
			"view":               dto.View,
			"selected_date":      dto.SelectedDate,
			"quantity_boxes":     dto.Quantity.Boxes,
			"quantity_min_boxes": dto.Quantity.MinBoxes,
			"quantity_max_boxes": dto.Quantity.MaxBoxes,
			"customer_name":      dto.Customer.Name,
			"customer_email":     dto.Customer.Email,
			"customer_phone":     dto.Customer.Phone,
			"customer_address":   dto.Customer.Address,
			"confirmed_order_id": dto.ConfirmedOrderID,
			"version":            s.Version() + 1,
			"touched_at":         dto.TouchedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.conflict(ctx, s)
	}

	if len(dto.Orders) == 0 {
		return nil
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.Orders).Error
}

// Get loads a session with its orders, most recent first.
func (r *GormSessionRepository) Get(ctx context.Context, id kernel.UUID) (*session.Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SessionDTO
	err := r.db.WithContext(ctx).
		Preload("Orders", func(db *gorm.DB) *gorm.DB {
			return db.Order("placed_at DESC, id DESC")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("session", id.String())
		}
		return nil, err
	}

	return toDomain(dto, r.location)
}

// DeleteIdleSince removes sessions not touched since cutoff together with
// their orders.
func (r *GormSessionRepository) DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error) {
	db := r.db.WithContext(ctx)

	idle := db.Model(&SessionDTO{}).Select("id").Where("touched_at < ?", cutoff)
	if err := db.Where("session_id IN (?)", idle).Delete(&OrderDTO{}).Error; err != nil {
		return 0, err
	}

	result := db.Where("touched_at < ?", cutoff).Delete(&SessionDTO{})
	if result.Error != nil {
		return 0, result.Error
	}
	return int(result.RowsAffected), nil
}

func (r *GormSessionRepository) conflict(ctx context.Context, s *session.Session) error {
	var stored SessionDTO
	err := r.db.WithContext(ctx).Select("id", "version").First(&stored, "id = ?", s.ID().Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError("session", s.ID().String())
	}
	if err != nil {
		return err
	}

	return errs.NewVersionIsInvalidErrorWithCause(
		"session",
		fmt.Errorf("session %s was loaded at version %d but is at version %d",
			s.ID().String(), s.Version(), stored.Version),
	)
}
