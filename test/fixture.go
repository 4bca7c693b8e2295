package test

import (
	"campus-connect/internal/model"
	"campus-connect/tools"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const Password = "password123"

func CreateUser(t *testing.T, db *gorm.DB, username string, role model.Role) *model.User {
	t.Helper()
	user := &model.User{Username: username, Password: tools.PasswordEncrypt(Password), Role: role}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateEvent 创建活动并关联给定 value 的分类（分类不存在时一并创建）
func CreateEvent(t *testing.T, db *gorm.DB, title string, date time.Time, categoryValues ...string) *model.Event {
	t.Helper()
	event := &model.Event{
		Title:       title,
		Description: "Description of " + title,
		Date:        date.UTC(),
		Time:        "10:00 AM",
		Location:    "Main Hall",
		ImageURL:    "https://images.example.com/" + title + ".png",
		CreatedBy:   1,
	}
	require.NoError(t, db.Create(event).Error)
	for _, value := range categoryValues {
		category := CreateCategory(t, db, value, model.CategoryTypeEvent)
		require.NoError(t, db.Create(&model.EventCategory{EventID: event.ID, CategoryID: category.ID}).Error)
	}
	return event
}

func CreateCategory(t *testing.T, db *gorm.DB, value string, typ model.CategoryType) *model.Category {
	t.Helper()
	var category model.Category
	err := db.Where(model.Category{Value: value}).
		Attrs(model.Category{Name: value, Type: typ}).
		FirstOrCreate(&category).Error
	require.NoError(t, err)
	return &category
}

func CreateClub(t *testing.T, db *gorm.DB, name, category string) *model.Club {
	t.Helper()
	club := &model.Club{
		Name:        name,
		Description: "Description of " + name,
		Category:    category,
		CreatedBy:   1,
	}
	require.NoError(t, db.Create(club).Error)
	return club
}

func CreateMeeting(t *testing.T, db *gorm.DB, clubID uint, date time.Time, at string) *model.ClubMeeting {
	t.Helper()
	meeting := &model.ClubMeeting{ClubID: clubID, Date: date.UTC(), Time: at, Location: "Room 101"}
	require.NoError(t, db.Create(meeting).Error)
	return meeting
}
