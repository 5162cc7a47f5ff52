package models

// AdminUser is a panel operator account.
type AdminUser struct {
	BaseModel
	Email        string `gorm:"uniqueIndex" json:"email"`
	PasswordHash string `json:"-"`
}
