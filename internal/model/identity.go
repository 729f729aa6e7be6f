package model

import "time"

// Identity roles.
const (
	RoleStudent   = "student"
	RoleSecretary = "secretary"
)

// Identity is a stored username/credential-digest/role triple.
// Created only by the seeder; read-only at runtime.
type Identity struct {
	IdentityID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"identity_id"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex;not null"         json:"username"`
	PasswordHash string    `gorm:"type:char(64);not null"                         json:"-"` // hex-encoded SHA-256
	Role         string    `gorm:"type:varchar(20);not null"                      json:"role"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName maps the model to its table.
func (Identity) TableName() string { return "identities" }
