package model

import (
	"time"
)

// Model 所有实体共用的主键与时间戳
// 不带 DeletedAt：活动/社团删除需要级联物理删除，软删除会让唯一索引 (event_id, user_id) 无法复用
type Model struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}
