package repository

import (
	"github.com/bantayan/disaster-report-api/internal/models"
	"gorm.io/gorm"
)

// GormReportRepository is a GORM implementation of ReportRepository
type GormReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &GormReportRepository{db: db}
}

// Create inserts a new report
func (r *GormReportRepository) Create(report *models.Report) error {
	return r.db.Create(report).Error
}

// List returns all reports, most recent first. The id tiebreaker keeps the
// order stable when inserts land within the same second.
func (r *GormReportRepository) List() ([]models.Report, error) {
	reports := make([]models.Report, 0)
	if err := r.db.Order("created_at DESC, id DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// Count returns the number of stored reports
func (r *GormReportRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Report{}).Count(&count).Error
	return count, err
}
