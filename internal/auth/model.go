package auth

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID        int            `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string         `gorm:"size:100;not null;column:firstname" json:"firstname"`
	LastName  string         `gorm:"size:100;not null;column:lastname" json:"lastname"`
	Email     string         `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Role      string         `gorm:"size:50;not null;default:'user'" json:"role"`
	// Sectors the user follows or belongs to, shown in the account page.
	Sectors   pq.StringArray `gorm:"type:text[]" json:"sectors"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (User) TableName() string { return "users" }

type SignUpRequest struct {
	FirstName string   `json:"firstname" binding:"required"`
	LastName  string   `json:"lastname" binding:"required"`
	Email     string   `json:"email" binding:"required,email"`
	Password  string   `json:"password" binding:"required,min=6"`
	Sectors   []string `json:"sectors"`
}

type LoginRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"rememberMe"`
}

type LoginResponse struct {
	ID        int            `json:"id"`
	FirstName string         `json:"firstname"`
	LastName  string         `json:"lastname"`
	Email     string         `json:"email"`
	Role      string         `json:"role"`
	Sectors   pq.StringArray `json:"sectors"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
