package model

import (
	"time"

	"bizconnect/internal/domain/entity"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Username  string `gorm:"type:varchar(50);unique;not null"`
	Email     string `gorm:"type:varchar(255);unique;not null"`
	Password  string `gorm:"type:varchar(255);not null"`
	FullName  string `gorm:"type:varchar(100)"`
	Role      string `gorm:"type:varchar(20);not null;default:user"`
	IsActive  bool   `gorm:"not null;default:true"`
	LastLogin *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts the row into the domain entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		Password:  m.Password,
		FullName:  m.FullName,
		Role:      entity.Role(m.Role),
		IsActive:  m.IsActive,
		LastLogin: m.LastLogin,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// UserModelFromEntity converts the domain entity into a row.
func UserModelFromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Password:  user.Password,
		FullName:  user.FullName,
		Role:      user.Role.String(),
		IsActive:  user.IsActive,
		LastLogin: user.LastLogin,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
