package services

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/harsh-kumbhar/lifelog/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrWeakPassword        = errors.New("password must be at least 8 characters")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrRegistrationClosed  = errors.New("registration is closed")
)

const minPasswordLength = 8

type AuthUserRepository interface {
	CountUsers() (int64, error)
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	Save(user *models.User) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates the instance's account. This is a personal deployment:
// once a user exists, registration is closed.
func (service *AuthService) Register(email string, password string, displayName string, timezone string) (models.User, error) {
	normalizedEmail := NormalizeEmail(email)
	if _, err := mail.ParseAddress(normalizedEmail); err != nil {
		return models.User{}, ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return models.User{}, ErrWeakPassword
	}

	count, err := service.users.CountUsers()
	if err != nil {
		return models.User{}, err
	}
	if count > 0 {
		return models.User{}, ErrRegistrationClosed
	}

	exists, err := service.users.ExistsByNormalizedEmail(normalizedEmail)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	if timezone == "" {
		timezone = "UTC"
	}
	user := models.User{
		Email:        normalizedEmail,
		PasswordHash: string(passwordHash),
		DisplayName:  strings.TrimSpace(displayName),
		Timezone:     timezone,
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (service *AuthService) Authenticate(email string, password string) (models.User, error) {
	user, err := service.users.FindByNormalizedEmail(NormalizeEmail(email))
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

func (service *AuthService) HasAccount() (bool, error) {
	count, err := service.users.CountUsers()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (service *AuthService) ChangePassword(userID uint, currentPassword string, newPassword string) error {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return ErrInvalidCredentials
	}
	if len(newPassword) < minPasswordLength {
		return ErrWeakPassword
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(passwordHash)
	user.MustChangePassword = false
	return service.users.Save(&user)
}
