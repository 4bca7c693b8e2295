package model

import "time"

// 积分账本的 activity_type
const (
	PointTypeEventRegistration = "event_registration"
	PointTypeClubMembership    = "club_membership"
)

// 动态流的 activity_type
const (
	ActivityEventRegistered = "event_registered"
	ActivityClubJoined      = "club_joined"
	ActivityPointsEarned    = "points_earned"
	ActivityCommentPosted   = "comment_posted"
)

// ActivityPoint 只追加的积分账本，用户总分为其全部记录之和
// 不引用活动/社团外键，实体被删除后记录保留
type ActivityPoint struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"userId"`
	Points       int       `gorm:"not null" json:"points"`
	ActivityType string    `gorm:"type:varchar(32);not null" json:"activityType"`
	EntityID     uint      `gorm:"not null" json:"entityId"`
	Description  string    `gorm:"type:varchar(255);not null" json:"description"`
	AwardedAt    time.Time `gorm:"not null" json:"awardedAt"`
}

// UserActivity 用户动态，EntityName 为写入时的快照，不随实体改名/删除而变化
type UserActivity struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index:idx_user_timestamp" json:"userId"`
	ActivityType string    `gorm:"type:varchar(32);not null" json:"activityType"`
	EntityID     uint      `gorm:"not null" json:"entityId"`
	EntityName   string    `gorm:"type:varchar(255);not null" json:"entityName"`
	Points       *int      `json:"points"`
	Timestamp    time.Time `gorm:"not null;index:idx_user_timestamp" json:"timestamp"`
}
