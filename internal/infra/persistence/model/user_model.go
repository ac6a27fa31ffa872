package model

import "time"

// UserModel mirrors the 'users' table. The id is a bigserial assigned by PostgreSQL.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID           int64     `gorm:"primaryKey"`
	FirstName    string    `gorm:"type:varchar(255);not null"`
	Surname      string    `gorm:"type:varchar(255);not null"`
	Username     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_username"`
	PasswordHash []byte    `gorm:"type:bytea;not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
