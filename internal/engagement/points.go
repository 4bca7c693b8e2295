package engagement

import (
	"campus-connect/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrInvalidPoints = errors.New("points must be a positive integer")

// AwardPoints 追加一条积分记录，不做去重，去重由调用方负责
func AwardPoints(tx *gorm.DB, userID uint, points int, activityType string, entityID uint, description string) error {
	if points <= 0 {
		return ErrInvalidPoints
	}
	return tx.Create(&model.ActivityPoint{
		UserID:       userID,
		Points:       points,
		ActivityType: activityType,
		EntityID:     entityID,
		Description:  description,
		AwardedAt:    tx.NowFunc(),
	}).Error
}

// TotalPoints 用户积分总和，没有记录时为 0
func (s *Service) TotalPoints(ctx context.Context, userID uint) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).
		Model(&model.ActivityPoint{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(points), 0)").
		Scan(&total).Error
	return total, err
}
