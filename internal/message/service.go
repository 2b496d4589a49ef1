package message

import (
	"errors"
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"jaz-events-api/config"
	"jaz-events-api/internal/logs"

	"gorm.io/gorm"
)

var sendMail = smtp.SendMail

type MessageService struct {
	DB  *gorm.DB
	CFG config.Config
	LS  *logs.LogService
}

// Create stores the contact message, then notifies the site inbox. The mail
// is best effort, a delivery failure never loses the message.
func (s *MessageService) Create(req *CreateMessageRequest) (*Message, error) {
	category := Category(strings.TrimSpace(strings.ToLower(req.Category)))
	if category == "" {
		category = CategoryGeneral
	}
	if !category.Valid() {
		return nil, fmt.Errorf("unknown category %q", req.Category)
	}

	msg := Message{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Phone:    strings.TrimSpace(req.Phone),
		Category: category,
		Body:     strings.TrimSpace(req.Body),
		Status:   StatusNew,
	}
	if msg.Body == "" {
		return nil, errors.New("message body is required")
	}

	if err := s.DB.Create(&msg).Error; err != nil {
		return nil, err
	}

	if err := s.notify(&msg); err != nil {
		log.Printf("Error sending contact notification for message %d: %v\n", msg.ID, err)
		if s.LS != nil {
			entry := logs.SystemLog{
				Level:   "warn",
				Service: "message",
				Action:  "notify_failed",
				Message: err.Error(),
			}
			if logErr := s.LS.Log(entry, map[string]interface{}{"message_id": msg.ID}); logErr != nil {
				log.Printf("Error writing system log: %v\n", logErr)
			}
		}
	}

	return &msg, nil
}

func (s *MessageService) notify(msg *Message) error {
	from := s.CFG.GmailUser
	password := s.CFG.GmailPass
	if from == "" || password == "" {
		return nil
	}

	to := []string{from}
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	subject := fmt.Sprintf("New %s message from %s", msg.Category, msg.Name)
	body := fmt.Sprintf(
		"Name: %s\nEmail: %s\nPhone: %s\nCategory: %s\n\n%s",
		msg.Name, msg.Email, msg.Phone, msg.Category, msg.Body,
	)

	mail := []byte(fmt.Sprintf(
		"To: %s\r\n"+
			"Subject: %s\r\n"+
			"\r\n"+
			"%s",
		from,
		subject,
		body,
	))

	auth := smtp.PlainAuth("", from, password, smtpHost)
	return sendMail(smtpHost+":"+smtpPort, auth, from, to, mail)
}

func (s *MessageService) List(status, category string) ([]Message, error) {
	q := s.DB.Model(&Message{})

	if status = strings.TrimSpace(status); status != "" {
		q = q.Where("status = ?", status)
	}
	if category = strings.TrimSpace(category); category != "" {
		q = q.Where("category = ?", category)
	}

	var msgs []Message
	if err := q.Order("created_at desc").Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

func (s *MessageService) GetByID(id int64) (*Message, error) {
	var msg Message
	if err := s.DB.First(&msg, id).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *MessageService) UpdateStatus(id int64, status Status) (*Message, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown status %q", status)
	}

	msg, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(msg).Update("status", status).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}
