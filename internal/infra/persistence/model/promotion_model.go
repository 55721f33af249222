package model

import "time"

// PromotionModel is the GORM-specific struct for the 'promotions' table.
// Rows are managed by the admin CRUD screens; this service only reads them.
type PromotionModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `gorm:"not null"`
	Title     string    `gorm:"type:text;not null"`
	Text      *string   `gorm:"type:text"`
	ImageLink *string   `gorm:"type:text"`
	URLLink   *string   `gorm:"column:url_link;type:text"`
}

// TableName explicitly sets the table name for GORM.
func (PromotionModel) TableName() string {
	return "promotions"
}
