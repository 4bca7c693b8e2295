package model

type CategoryType string

const (
	CategoryTypeEvent CategoryType = "event"
	CategoryTypeClub  CategoryType = "club"
)

type Category struct {
	ID    uint         `gorm:"primaryKey" json:"id"`
	Name  string       `gorm:"type:varchar(64);uniqueIndex;not null" json:"name"`
	Value string       `gorm:"type:varchar(64);uniqueIndex;not null" json:"value"`
	Type  CategoryType `gorm:"type:varchar(16);not null;index" json:"type"`
}
