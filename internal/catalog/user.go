package catalog

import (
	"campus-connect/internal/model"
	"context"
	"slices"
	"time"
)

type UserEvent struct {
	EventWithCategories
	RegisteredAt time.Time `json:"registeredAt"`
}

type UserClub struct {
	model.Club
	JoinedAt    time.Time `json:"joinedAt"`
	MemberCount int64     `json:"memberCount"`
	IsMember    bool      `json:"isMember"`
	NextMeeting string    `json:"nextMeeting,omitempty"` // "Today, 4:00 PM" 这样的展示文本
}

type CalendarEvent struct {
	ID    uint      `json:"id"`
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
	Time  string    `json:"time"`
	Color string    `json:"color"`
}

// UserEvents 用户已报名的活动，按活动日期升序
func (s *Service) UserEvents(ctx context.Context, userID uint) ([]UserEvent, error) {
	var rows []struct {
		model.Event
		RegisteredAt time.Time
	}
	err := s.db.WithContext(ctx).
		Table("event").
		Select("event.*, event_registration.registered_at").
		Joins("JOIN event_registration ON event_registration.event_id = event.id").
		Where("event_registration.user_id = ?", userID).
		Order("event.date ASC").
		Order("event.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	events := make([]model.Event, len(rows))
	for i, r := range rows {
		events[i] = r.Event
	}
	annotated, err := s.annotate(ctx, events, userID)
	if err != nil {
		return nil, err
	}
	result := make([]UserEvent, len(rows))
	for i := range rows {
		result[i] = UserEvent{EventWithCategories: annotated[i], RegisteredAt: rows[i].RegisteredAt}
	}
	return result, nil
}

// UserClubs 用户加入的社团，按加入时间升序，附带成员数和下一次例会的展示文本
func (s *Service) UserClubs(ctx context.Context, userID uint, now time.Time) ([]UserClub, error) {
	result := []UserClub{}
	err := s.db.WithContext(ctx).
		Table("club").
		Select("club.*, club_membership.joined_at, COALESCE(mc.total, 0) AS member_count").
		Joins("JOIN club_membership ON club_membership.club_id = club.id").
		Joins("LEFT JOIN (?) AS mc ON mc.club_id = club.id", s.memberCounts()).
		Where("club_membership.user_id = ?", userID).
		Order("club_membership.joined_at ASC").
		Order("club.id ASC").
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	for i := range result {
		result[i].IsMember = true
		meeting, err := s.nextMeeting(ctx, result[i].ID, now)
		if err != nil {
			return nil, err
		}
		if meeting != nil {
			result[i].NextMeeting = MeetingText(meeting.Date, meeting.Time, now)
		}
	}
	return result, nil
}

// MeetingText 以 now 所在时区比较日期：当天为 "Today, t"，次日为 "Tomorrow, t"，其余为 "<星期>, t"
func MeetingText(date time.Time, at string, now time.Time) string {
	date = date.In(now.Location())
	y, m, d := date.Date()
	sameDay := func(t time.Time) bool {
		ty, tm, td := t.Date()
		return ty == y && tm == m && td == d
	}
	switch {
	case sameDay(now):
		return "Today, " + at
	case sameDay(now.AddDate(0, 0, 1)):
		return "Tomorrow, " + at
	default:
		return date.Weekday().String() + ", " + at
	}
}

// CalendarColor 按分类决定日历颜色，优先级 workshop > cultural > career
func CalendarColor(categoryValues []string) string {
	switch {
	case slices.Contains(categoryValues, "workshop"):
		return "secondary"
	case slices.Contains(categoryValues, "cultural"):
		return "accent"
	case slices.Contains(categoryValues, "career"):
		return "destructive"
	default:
		return "primary"
	}
}

func (s *Service) Calendar(ctx context.Context, userID uint) ([]CalendarEvent, error) {
	events, err := s.UserEvents(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]CalendarEvent, len(events))
	for i, e := range events {
		result[i] = CalendarEvent{
			ID:    e.ID,
			Title: e.Title,
			Date:  e.Date,
			Time:  e.Time,
			Color: CalendarColor(e.CategoryValues),
		}
	}
	return result, nil
}
