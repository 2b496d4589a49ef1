package auth

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var allowedRoles = map[string]bool{
	"user":  true,
	"admin": true,
}

type AuthService struct {
	DB *gorm.DB
}

func (s *AuthService) CreateUser(user User) (*User, error) {
	if user.Role == "" {
		user.Role = "user"
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	if err := s.DB.Create(&user).Error; err != nil {
		// check if it's a unique constraint violation
		if strings.Contains(err.Error(), "duplicate key") || strings.Contains(err.Error(), "UNIQUE constraint") || strings.Contains(err.Error(), "unique constraint") {
			return nil, errors.New("An account with this email already exists. Please log in instead.")
		}
		return nil, err
	}

	return &user, nil
}

func (s *AuthService) GetUser(email string) (*User, error) {
	var user User
	result := s.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (s *AuthService) GetUserByID(id int) (*User, error) {
	var user User
	result := s.DB.Where("id = ?", id).First(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (s *AuthService) GetAllUsers() ([]User, error) {
	var users []User
	result := s.DB.Order("id asc").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (s *AuthService) UpdateRole(id int, role string) (*User, error) {
	role = strings.ToLower(strings.TrimSpace(role))
	if !allowedRoles[role] {
		return nil, errors.New("unknown role")
	}

	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(user).Update("role", role).Error; err != nil {
		return nil, err
	}
	return s.GetUserByID(id)
}
