package model

import "time"

// User 用户表 — 对应 users
// password 字段只存 bcrypt 哈希，永不存明文
type User struct {
	ID           uint      `gorm:"primaryKey"                                         json:"id"`
	FirstName    string    `gorm:"type:varchar(100);not null"                         json:"first_name"`
	LastName     string    `gorm:"type:varchar(100);not null"                         json:"last_name"`
	Gender       string    `gorm:"type:varchar(20);not null"                          json:"gender"`
	Nationality  string    `gorm:"type:varchar(100);not null"                         json:"nationality"`
	Organization string    `gorm:"type:varchar(255);not null"                         json:"organization"`
	Position     string    `gorm:"type:varchar(255);not null"                         json:"position"`
	DOB          time.Time `gorm:"type:date;not null"                                 json:"dob"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email" json:"email"`
	Password     string    `gorm:"type:varchar(255);not null"                         json:"-"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                 json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                 json:"updated_at"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// FullName 姓名拼接，目录页展示用
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
