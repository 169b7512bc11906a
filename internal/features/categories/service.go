package categories

import (
	"errors"
	"fmt"
	"strings"

	users_models "lessonbook/internal/features/users/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryService struct {
	categoryRepository *CategoryRepository
}

// GetOrCreateCategory returns the existing category matching the name
// case-insensitively, or creates a new one.
func (s *CategoryService) GetOrCreateCategory(name string, description string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("category name is required")
	}

	existing, err := s.categoryRepository.GetByNameCaseInsensitive(name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up category: %w", err)
	}

	if existing != nil {
		return existing, nil
	}

	category := &Category{
		Name:        name,
		Description: description,
	}

	if err := s.categoryRepository.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

func (s *CategoryService) GetCategory(categoryID uuid.UUID) (*Category, error) {
	return s.categoryRepository.GetByID(categoryID)
}

func (s *CategoryService) GetCategories() ([]*Category, error) {
	return s.categoryRepository.GetAll()
}

// DeleteCategory removes a shared category. Lessons keep their rows and
// fall back to uncategorized.
func (s *CategoryService) DeleteCategory(categoryID uuid.UUID, user *users_models.User) error {
	if !user.Capabilities().Elevated {
		return errors.New("only administrators can delete categories")
	}

	category, err := s.categoryRepository.GetByID(categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("category not found")
		}

		return fmt.Errorf("failed to look up category: %w", err)
	}

	return s.categoryRepository.Delete(category.ID)
}
