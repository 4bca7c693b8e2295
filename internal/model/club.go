package model

import "time"

type Club struct {
	Model
	Name        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text;not null" json:"description"`
	Category    string `gorm:"type:varchar(64);not null;index" json:"category"` // 自由文本标签，不关联 category 表
	CreatedBy   uint   `gorm:"not null" json:"createdBy"`
}

type ClubMeeting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ClubID    uint      `gorm:"not null;index" json:"clubId"`
	Date      time.Time `gorm:"not null" json:"date"`
	Time      string    `gorm:"type:varchar(32);not null" json:"time"`
	Location  string    `gorm:"type:varchar(255);not null" json:"location"`
	CreatedAt time.Time `json:"createdAt"`
}

// ClubMembership 同一 (club, user) 至多一条
type ClubMembership struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	ClubID   uint      `gorm:"not null;uniqueIndex:idx_club_user" json:"clubId"`
	UserID   uint      `gorm:"not null;uniqueIndex:idx_club_user;index" json:"userId"`
	JoinedAt time.Time `gorm:"not null" json:"joinedAt"`
}
