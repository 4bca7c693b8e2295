package database

import (
	"campus-connect/internal/model"
	"campus-connect/tools"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var seedCategories = []model.Category{
	{Name: "Career", Value: "career", Type: model.CategoryTypeEvent},
	{Name: "Workshop", Value: "workshop", Type: model.CategoryTypeEvent},
	{Name: "Cultural", Value: "cultural", Type: model.CategoryTypeEvent},
	{Name: "Academic", Value: "academic", Type: model.CategoryTypeEvent},
	{Name: "Sports", Value: "sports", Type: model.CategoryTypeEvent},
	{Name: "Coding", Value: "coding", Type: model.CategoryTypeClub},
	{Name: "Chess", Value: "chess", Type: model.CategoryTypeClub},
	{Name: "Music", Value: "music", Type: model.CategoryTypeClub},
	{Name: "Basketball", Value: "basketball", Type: model.CategoryTypeClub},
	{Name: "Literature", Value: "literature", Type: model.CategoryTypeClub},
	{Name: "Art", Value: "art", Type: model.CategoryTypeClub},
	{Name: "Photography", Value: "photography", Type: model.CategoryTypeClub},
	{Name: "Volunteer", Value: "volunteer", Type: model.CategoryTypeClub},
	{Name: "International", Value: "international", Type: model.CategoryTypeClub},
}

// Seed 写入参考分类与演示账号，可重复执行
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		categories := append([]model.Category(nil), seedCategories...)
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&categories).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&model.User{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		users := []model.User{
			{Username: "admin", Password: tools.PasswordEncrypt("admin123"), Role: model.RoleAdmin},
			{Username: "student", Password: tools.PasswordEncrypt("student123"), Role: model.RoleStudent},
		}
		return tx.Create(&users).Error
	})
}
