// Package analytics 管理后台的汇总统计与导出
package analytics

import (
	"campus-connect/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

const topN = 5

type MonthCount struct {
	Month string `json:"month" excel:"Month"`
	Count int64  `json:"count" excel:"Events"`
}

type TopEvent struct {
	ID            uint   `json:"id" excel:"ID"`
	Title         string `json:"title" excel:"Title"`
	Registrations int64  `json:"registrations" excel:"Registrations"`
}

type TopClub struct {
	ID      uint   `json:"id" excel:"ID"`
	Name    string `json:"name" excel:"Name"`
	Members int64  `json:"members" excel:"Members"`
}

type Summary struct {
	UsersCount    int64        `json:"usersCount"`
	EventsCount   int64        `json:"eventsCount"`
	ClubsCount    int64        `json:"clubsCount"`
	EventsByMonth []MonthCount `json:"eventsByMonth"`
	TopEvents     []TopEvent   `json:"topEvents"`
	TopClubs      []TopClub    `json:"topClubs"`
}

type Service struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Summary(ctx context.Context, now time.Time) (*Summary, error) {
	db := s.db.WithContext(ctx)
	sum := &Summary{}

	for _, c := range []struct {
		model any
		dest  *int64
	}{
		{&model.User{}, &sum.UsersCount},
		{&model.Event{}, &sum.EventsCount},
		{&model.Club{}, &sum.ClubsCount},
	} {
		if err := db.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	var err error
	if sum.EventsByMonth, err = s.eventsByMonth(db, now); err != nil {
		return nil, err
	}
	if sum.TopEvents, err = s.topEvents(db); err != nil {
		return nil, err
	}
	if sum.TopClubs, err = s.topClubs(db); err != nil {
		return nil, err
	}
	return sum, nil
}

// eventsByMonth 统计 now 所在年份每个月的活动数，只返回有活动的月份，按月份排序
func (s *Service) eventsByMonth(db *gorm.DB, now time.Time) ([]MonthCount, error) {
	now = now.UTC()
	from := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)

	var dates []time.Time
	err := db.Model(&model.Event{}).
		Where("date >= ? AND date < ?", from, from.AddDate(1, 0, 0)).
		Pluck("date", &dates).Error
	if err != nil {
		return nil, err
	}

	var counts [12]int64
	for _, d := range dates {
		counts[d.UTC().Month()-1]++
	}
	result := []MonthCount{}
	for i, n := range counts {
		if n > 0 {
			result = append(result, MonthCount{Month: time.Month(i + 1).String()[:3], Count: n})
		}
	}
	return result, nil
}

func (s *Service) topEvents(db *gorm.DB) ([]TopEvent, error) {
	result := []TopEvent{}
	err := db.Table("event").
		Select("event.id, event.title, COALESCE(rc.total, 0) AS registrations").
		Joins("LEFT JOIN (?) AS rc ON rc.event_id = event.id", s.db.Model(&model.EventRegistration{}).
			Select("event_id, COUNT(*) AS total").
			Group("event_id")).
		Order("registrations DESC").
		Order("event.id ASC").
		Limit(topN).
		Scan(&result).Error
	return result, err
}

func (s *Service) topClubs(db *gorm.DB) ([]TopClub, error) {
	result := []TopClub{}
	err := db.Table("club").
		Select("club.id, club.name, COALESCE(mc.total, 0) AS members").
		Joins("LEFT JOIN (?) AS mc ON mc.club_id = club.id", s.db.Model(&model.ClubMembership{}).
			Select("club_id, COUNT(*) AS total").
			Group("club_id")).
		Order("members DESC").
		Order("club.id ASC").
		Limit(topN).
		Scan(&result).Error
	return result, err
}
