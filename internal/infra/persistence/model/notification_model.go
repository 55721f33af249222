package model

import "time"

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// Each row is the delivery record of one message to one user.
type NotificationModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	CreatedAt   time.Time `gorm:"not null;index:idx_notifications_user_created,priority:2,sort:desc"`
	UserEmail   string    `gorm:"type:varchar(255);not null;index:idx_notifications_user_created,priority:1"`
	Title       string    `gorm:"type:text;not null"`
	Body        string    `gorm:"type:text;not null;default:''"`
	URL         string    `gorm:"column:url;type:text;not null;default:''"`
	PromotionID *int64    `gorm:"index"`

	Promotion *PromotionModel `gorm:"foreignKey:PromotionID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
