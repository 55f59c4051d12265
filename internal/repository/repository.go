package repository

import (
	"github.com/bantayan/disaster-report-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user; a duplicate email surfaces as
	// ErrDuplicateEmail from the store's uniqueness constraint.
	Create(user *models.User) error

	// FindByEmail finds a user by exact email match
	FindByEmail(email string) (*models.User, error)

	// CountByEmail counts users registered under the given email
	CountByEmail(email string) (int64, error)
}

// ReportRepository defines the interface for report data access
type ReportRepository interface {
	// Create inserts a new report
	Create(report *models.Report) error

	// List returns all reports, most recent first
	List() ([]models.Report, error)

	// Count returns the number of stored reports
	Count() (int64, error)
}
