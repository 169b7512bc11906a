package categories

import (
	"errors"
	"time"

	"lessonbook/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepository struct{}

func (r *CategoryRepository) Create(category *Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(category).Error
}

func (r *CategoryRepository) GetByID(categoryID uuid.UUID) (*Category, error) {
	var category Category

	if err := storage.GetDb().Where("id = ?", categoryID).First(&category).Error; err != nil {
		return nil, err
	}

	return &category, nil
}

// GetByNameCaseInsensitive matches the stored name ignoring case, so
// "Safety" and "safety" resolve to the same category.
func (r *CategoryRepository) GetByNameCaseInsensitive(name string) (*Category, error) {
	var category Category

	err := storage.GetDb().
		Where("LOWER(name) = LOWER(?)", name).
		First(&category).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &category, nil
}

func (r *CategoryRepository) Delete(categoryID uuid.UUID) error {
	return storage.GetDb().Where("id = ?", categoryID).Delete(&Category{}).Error
}

func (r *CategoryRepository) GetAll() ([]*Category, error) {
	categories := make([]*Category, 0)

	err := storage.GetDb().Order("name ASC").Find(&categories).Error

	return categories, err
}
