package postgres

import (
	"context"
	"errors"

	"github.com/dom/superhero-pets/internal/domain"
	"gorm.io/gorm"
)

type heroRepository struct {
	db *gorm.DB
}

func NewHeroRepository(db *gorm.DB) *heroRepository {
	return &heroRepository{db: db}
}

func (r *heroRepository) Create(ctx context.Context, hero *domain.Hero) error {
	return r.db.WithContext(ctx).Create(hero).Error
}

func (r *heroRepository) CreateMany(ctx context.Context, heroes []*domain.Hero) error {
	if len(heroes) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(heroes).Error
}

func (r *heroRepository) GetByID(ctx context.Context, id int64) (*domain.Hero, error) {
	var hero domain.Hero
	err := r.db.WithContext(ctx).First(&hero, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrHeroNotFound
		}
		return nil, err
	}
	return &hero, nil
}

func (r *heroRepository) GetAll(ctx context.Context) ([]*domain.Hero, error) {
	var heroes []*domain.Hero
	err := r.db.WithContext(ctx).Order("id ASC").Find(&heroes).Error
	if err != nil {
		return nil, err
	}
	return heroes, nil
}

func (r *heroRepository) Update(ctx context.Context, hero *domain.Hero) error {
	res := r.db.WithContext(ctx).Model(hero).Select("name", "alias", "city", "team", "updated_at").Updates(hero)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrHeroNotFound
	}
	return nil
}

func (r *heroRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Hero{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *heroRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Hero{}).Count(&count).Error
	return count, err
}
