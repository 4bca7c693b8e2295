package model

// All 需要自动迁移的模型列表
func All() []any {
	return []any{
		&User{},
		&Category{},
		&Event{},
		&EventCategory{},
		&EventRegistration{},
		&Club{},
		&ClubMeeting{},
		&ClubMembership{},
		&ActivityPoint{},
		&UserActivity{},
	}
}
