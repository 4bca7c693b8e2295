package engagement

import (
	"campus-connect/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type UserStats struct {
	RegisteredEvents int64      `json:"registeredEvents"`
	ClubMemberships  int64      `json:"clubMemberships"`
	ActivityPoints   int64      `json:"activityPoints"`
	UpcomingEvents   int64      `json:"upcomingEvents"`
	NextEventName    *string    `json:"nextEventName,omitempty"`
	NextEventID      *uint      `json:"nextEventId,omitempty"`
	NextEventDate    *time.Time `json:"nextEventDate,omitempty"`
}

// UserStats 每次调用都实时计算；date >= now 的已报名活动算作即将开始
func (s *Service) UserStats(ctx context.Context, userID uint, now time.Time) (*UserStats, error) {
	db := s.db.WithContext(ctx)
	now = now.UTC()
	stats := &UserStats{}

	if err := db.Model(&model.EventRegistration{}).
		Where("user_id = ?", userID).
		Count(&stats.RegisteredEvents).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.ClubMembership{}).
		Where("user_id = ?", userID).
		Count(&stats.ClubMemberships).Error; err != nil {
		return nil, err
	}

	points, err := s.TotalPoints(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.ActivityPoints = points

	upcoming := func() *gorm.DB {
		return db.Model(&model.Event{}).
			Joins("JOIN event_registration ON event_registration.event_id = event.id").
			Where("event_registration.user_id = ? AND event.date >= ?", userID, now)
	}
	if err := upcoming().Count(&stats.UpcomingEvents).Error; err != nil {
		return nil, err
	}
	if stats.UpcomingEvents == 0 {
		return stats, nil
	}

	var next model.Event
	err = upcoming().
		Select("event.id", "event.title", "event.date").
		Order("event.date ASC").
		Order("event.id ASC").
		Take(&next).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return stats, nil
	case err != nil:
		return nil, err
	}
	stats.NextEventName = &next.Title
	stats.NextEventID = &next.ID
	stats.NextEventDate = &next.Date
	return stats, nil
}
