package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "budgetsplit/internal/errors"
	"budgetsplit/internal/models"
)

// maxPhoneLen is the schema limit for the combined phone string.
const maxPhoneLen = 20

// userService handles account and credential logic.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// NormalizePhone combines a country code and local number into the full phone
// string used as the login key. Whitespace is stripped, and a country code the
// user redundantly typed into the local-number field is removed, so
// NormalizePhone("+91", "+919876543210") and NormalizePhone("+91", "9876543210")
// yield the same result.
func NormalizePhone(countryCode, localNumber string) string {
	code := strings.TrimSpace(countryCode)
	local := strings.Join(strings.Fields(localNumber), "")
	local = strings.TrimPrefix(local, code)
	return code + local
}

// CreateUser registers a new account. The raw password is hashed with bcrypt
// and never stored or logged.
func (s *userService) CreateUser(countryCode, localNumber, email, password string) (*models.User, error) {
	if countryCode == "" || localNumber == "" || email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "phone, email and password are required")
	}

	phone := NormalizePhone(countryCode, localNumber)
	if len(phone) > maxPhoneLen {
		return nil, apperrors.ErrPhoneTooLong
	}

	email = strings.ToLower(strings.TrimSpace(email))

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	if err := s.db.Model(&models.User{}).Where("phone = ?", phone).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicatePhone
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Phone:        phone,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.db.Create(user).Error; err != nil {
		// The unique constraints back up the pre-checks under concurrency.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return user, nil
}

// Login authenticates by phone and password. Unknown phone and wrong password
// are indistinguishable to the caller.
func (s *userService) Login(countryCode, localNumber, password string) (*models.User, error) {
	if localNumber == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	phone := NormalizePhone(countryCode, localNumber)
	user, err := s.FindByPhone(phone)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !s.VerifyPassword(user, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

// FindByPhone retrieves a user by the full phone string.
func (s *userService) FindByPhone(phone string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("phone = ?", phone).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// VerifyPassword checks if the provided password matches the stored hash
func (s *userService) VerifyPassword(user *models.User, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	return err == nil
}
