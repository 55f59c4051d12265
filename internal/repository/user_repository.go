package repository

import (
	"errors"
	"strings"

	"github.com/bantayan/disaster-report-api/internal/models"
	"gorm.io/gorm"
)

// ErrDuplicateEmail is returned when an insert trips the unique email
// constraint. Detection relies on the constraint itself rather than a
// pre-check, so two racing registrations cannot both succeed.
var ErrDuplicateEmail = errors.New("user repository: email already registered")

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create inserts a new user
func (r *GormUserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// FindByEmail finds a user by exact email match
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CountByEmail counts users registered under the given email
func (r *GormUserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

// isDuplicateKey matches the translated GORM error and, as a fallback, the
// raw SQLite constraint message seen when error translation is unavailable.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
