package model

type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleAdmin   Role = "ADMIN"
)

type User struct {
	Model
	Username string `gorm:"type:varchar(64);uniqueIndex;not null" json:"username"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`
	Role     Role   `gorm:"type:varchar(16);default:'STUDENT';not null" json:"role"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
