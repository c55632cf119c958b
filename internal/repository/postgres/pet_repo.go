package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/dom/superhero-pets/internal/domain"
	"github.com/dom/superhero-pets/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type petRepository struct {
	db *gorm.DB
}

func NewPetRepository(db *gorm.DB) *petRepository {
	return &petRepository{db: db}
}

func (r *petRepository) Create(ctx context.Context, pet *domain.Pet) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(pet).Error
}

func (r *petRepository) CreateMany(ctx context.Context, pets []*domain.Pet) error {
	if len(pets) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(pets).Error
}

func (r *petRepository) GetByID(ctx context.Context, id int64) (*domain.Pet, error) {
	var pet domain.Pet
	err := r.db.WithContext(ctx).First(&pet, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPetNotFound
		}
		return nil, err
	}
	return &pet, nil
}

func (r *petRepository) List(ctx context.Context, filter repository.PetFilter) ([]*domain.Pet, error) {
	var pets []*domain.Pet
	err := applyPetFilter(r.db.WithContext(ctx), filter).Order("id ASC").Find(&pets).Error
	if err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *petRepository) Update(ctx context.Context, pet *domain.Pet) error {
	current := pet.Version
	pet.Version = current + 1

	res := r.db.WithContext(ctx).
		Model(pet).
		Where("version = ?", current).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(pet)
	if res.Error != nil {
		pet.Version = current
		return res.Error
	}
	if res.RowsAffected == 0 {
		pet.Version = current
		return domain.ErrVersionConflict
	}
	return nil
}

func (r *petRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Pet{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *petRepository) Count(ctx context.Context, filter repository.PetFilter) (int64, error) {
	var count int64
	err := applyPetFilter(r.db.WithContext(ctx).Model(&domain.Pet{}), filter).Count(&count).Error
	return count, err
}

func (r *petRepository) SetAdopter(ctx context.Context, petID int64, userID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Pet{}).
		Where("id = ? AND adopted_by_user_id IS NULL", petID).
		Updates(map[string]any{
			"adopted_by_user_id": userID,
			"version":            gorm.Expr("version + 1"),
			"updated_at":         time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *petRepository) ClearAdopter(ctx context.Context, petID int64, userID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Pet{}).
		Where("id = ? AND adopted_by_user_id = ?", petID, userID).
		Updates(map[string]any{
			"adopted_by_user_id": nil,
			"version":            gorm.Expr("version + 1"),
			"updated_at":         time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func applyPetFilter(q *gorm.DB, filter repository.PetFilter) *gorm.DB {
	if filter.Adopted != nil {
		if *filter.Adopted {
			q = q.Where("adopted_by_user_id IS NOT NULL")
		} else {
			q = q.Where("adopted_by_user_id IS NULL")
		}
	}
	if filter.AdoptedBy != nil {
		q = q.Where("adopted_by_user_id = ?", *filter.AdoptedBy)
	}
	if filter.VisibleTo != nil {
		q = q.Where("adopted_by_user_id IS NULL OR adopted_by_user_id = ?", *filter.VisibleTo)
	}
	return q
}
