package catalog

import (
	"campus-connect/internal/model"
	"context"
)

func (s *Service) Categories(ctx context.Context, typ model.CategoryType) ([]model.Category, error) {
	categories := []model.Category{}
	err := s.db.WithContext(ctx).Where("type = ?", typ).Order("id").Find(&categories).Error
	return categories, err
}
