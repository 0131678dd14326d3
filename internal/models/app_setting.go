package models

// AppSetting is a key/value row, e.g. the login PIN hash under "login_pin".
type AppSetting struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value string `gorm:"size:255;not null"`
}
