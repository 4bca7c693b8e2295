package model

import "time"

type Event struct {
	Model
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	Time        string    `gorm:"type:varchar(32);not null" json:"time"` // 展示用时间文本，如 "10:00 AM"
	Location    string    `gorm:"type:varchar(255);not null" json:"location"`
	ImageURL    string    `gorm:"type:varchar(1024);not null" json:"imageUrl"`
	CreatedBy   uint      `gorm:"not null" json:"createdBy"`
}

// EventCategory 活动与分类的多对多关联
type EventCategory struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	EventID    uint `gorm:"not null;uniqueIndex:idx_event_category" json:"eventId"`
	CategoryID uint `gorm:"not null;uniqueIndex:idx_event_category" json:"categoryId"`
}

// EventRegistration 同一 (event, user) 至多一条，由唯一索引保证
type EventRegistration struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	EventID      uint      `gorm:"not null;uniqueIndex:idx_event_user" json:"eventId"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_event_user;index" json:"userId"`
	RegisteredAt time.Time `gorm:"not null" json:"registeredAt"`
}
