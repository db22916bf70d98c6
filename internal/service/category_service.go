package service

import (
	"context"

	"github.com/stemsi/trivia-api/internal/model"
	"github.com/stemsi/trivia-api/internal/repository"
)

type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) GetAll(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepo.GetAll(ctx)
}
