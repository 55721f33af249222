package model

import "time"

// DeviceTokenModel is the GORM-specific struct for the 'device_tokens' table.
// The (user_email, token) pair is unique so registration can be idempotent.
type DeviceTokenModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserEmail string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_device_tokens_user_token,priority:1"`
	Token     string    `gorm:"type:text;not null;uniqueIndex:idx_device_tokens_user_token,priority:2"`
	Platform  string    `gorm:"type:varchar(20);not null;default:'web'"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceTokenModel) TableName() string {
	return "device_tokens"
}
