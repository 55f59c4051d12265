package services

import (
	"errors"

	apierrors "github.com/bantayan/disaster-report-api/internal/errors"
	"github.com/bantayan/disaster-report-api/internal/models"
	"github.com/bantayan/disaster-report-api/internal/repository"
	"github.com/bantayan/disaster-report-api/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrMissingFields      = apierrors.Validation("name, email and password are required")
	ErrInvalidEmail       = apierrors.Validation("invalid email address")
	ErrEmailTaken         = apierrors.Conflict("email already exists")
	ErrInvalidCredentials = apierrors.Authentication("invalid email or password")
)

// AuthService handles registration and login.
type AuthService struct {
	userRepo    repository.UserRepository
	strictEmail bool
}

// NewAuthService creates a new AuthService. strictEmail enables the email
// format check during registration; deployments that validate client-side
// can turn it off.
func NewAuthService(userRepo repository.UserRepository, strictEmail bool) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		strictEmail: strictEmail,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// Register sanitizes the input, hashes the password and inserts the user.
// A duplicate email is reported by the store's uniqueness constraint, never
// by a lookup beforehand, so concurrent registrations cannot race past it.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	name := utils.Sanitize(input.Name)
	email := utils.Sanitize(input.Email)
	phone := utils.Sanitize(input.Phone)

	if name == "" || email == "" || input.Password == "" {
		return nil, ErrMissingFields
	}
	if s.strictEmail && !utils.ValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apierrors.Persistence("failed to hash password")
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Phone:        phone,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, apierrors.Persistence(err.Error())
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the matching user. Unknown email
// and wrong password produce the same error so the response reveals neither.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	email := utils.Sanitize(input.Email)
	if email == "" || input.Password == "" {
		return nil, apierrors.Validation("email and password are required")
	}

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, apierrors.Persistence(err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
