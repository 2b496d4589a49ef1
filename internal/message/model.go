package message

import "time"

type Category string

const (
	CategoryGeneral     Category = "general"
	CategoryPartnership Category = "partnership"
	CategoryTraining    Category = "training"
	CategoryMedia       Category = "media"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryGeneral, CategoryPartnership, CategoryTraining, CategoryMedia:
		return true
	}
	return false
}

type Status string

const (
	StatusNew      Status = "new"
	StatusRead     Status = "read"
	StatusArchived Status = "archived"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusRead, StatusArchived:
		return true
	}
	return false
}

// Message is a contact form entry. Messages only flow inward; replies happen
// over email outside the system.
type Message struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" gorm:"size:255;not null"`
	Phone     string    `json:"phone" gorm:"size:50;not null;default:''"`
	Category  Category  `json:"category" gorm:"size:30;not null;default:'general';index"`
	Body      string    `json:"body" gorm:"type:text;not null"`
	Status    Status    `json:"status" gorm:"size:20;not null;default:'new';index"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
}

func (Message) TableName() string { return "messages" }

type CreateMessageRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Category string `json:"category"`
	Body     string `json:"body" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
