package model

// RecipientModel mirrors the 'recipients' table owned by the user directory.
type RecipientModel struct {
	Email       string `gorm:"type:varchar(255);primaryKey"`
	DisplayName string `gorm:"type:varchar(100);not null;default:''"`
}

// TableName explicitly sets the table name for GORM.
func (RecipientModel) TableName() string {
	return "recipients"
}
