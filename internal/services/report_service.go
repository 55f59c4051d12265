package services

import (
	"strings"
	"time"

	apierrors "github.com/bantayan/disaster-report-api/internal/errors"
	"github.com/bantayan/disaster-report-api/internal/models"
	"github.com/bantayan/disaster-report-api/internal/repository"
	"github.com/bantayan/disaster-report-api/internal/utils"
)

// DateTimeFormat is applied when a report arrives without a date_time value.
const DateTimeFormat = "2006-01-02 15:04"

var ErrMissingReportFields = apierrors.Validation("title and description are required")

// ReportService handles report submission and listing.
type ReportService struct {
	reportRepo repository.ReportRepository
	now        func() time.Time
}

// NewReportService creates a new ReportService.
func NewReportService(reportRepo repository.ReportRepository) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		now:        time.Now,
	}
}

// SubmitReportInput represents input for submitting a report. Categories is
// the explicit list form; Checkboxes carries the per-category boolean form.
// When both are present the explicit list wins.
type SubmitReportInput struct {
	Title            string
	Description      string
	DateTime         string
	Categories       []string
	Checkboxes       map[models.Category]bool
	Location         string
	LocationLandmark string
	FullName         string
	Email            string
	Phone            string
	NewsLink         string
	MediaURL         string
}

// Submit validates and sanitizes the input, fills in derived fields and
// inserts the report.
func (s *ReportService) Submit(input SubmitReportInput) (*models.Report, error) {
	title := utils.Sanitize(input.Title)
	description := utils.Sanitize(input.Description)
	if title == "" || description == "" {
		return nil, ErrMissingReportFields
	}

	dateTime := utils.Sanitize(input.DateTime)
	if dateTime == "" {
		dateTime = s.now().Format(DateTimeFormat)
	}

	report := &models.Report{
		Title:            title,
		Description:      description,
		DateTime:         dateTime,
		Categories:       normalizeCategories(input.Categories, input.Checkboxes),
		Location:         utils.Sanitize(input.Location),
		LocationLandmark: utils.Sanitize(input.LocationLandmark),
		FullName:         utils.Sanitize(input.FullName),
		Email:            utils.Sanitize(input.Email),
		Phone:            utils.Sanitize(input.Phone),
		NewsLink:         utils.Sanitize(input.NewsLink),
		MediaURL:         utils.Sanitize(input.MediaURL),
	}

	if err := s.reportRepo.Create(report); err != nil {
		return nil, apierrors.Persistence(err.Error())
	}

	return report, nil
}

// List returns all stored reports, most recent first.
func (s *ReportService) List() ([]models.Report, error) {
	reports, err := s.reportRepo.List()
	if err != nil {
		return nil, apierrors.Persistence(err.Error())
	}
	return reports, nil
}

// normalizeCategories folds both submission forms into the stored string.
// An explicit list is joined in the order given; checkbox selections are
// collected in vocabulary order. No selection at all stores Uncategorized.
func normalizeCategories(explicit []string, checkboxes map[models.Category]bool) string {
	var cleaned []string
	for _, c := range explicit {
		if v := utils.Sanitize(c); v != "" {
			cleaned = append(cleaned, v)
		}
	}
	if len(cleaned) > 0 {
		return strings.Join(cleaned, ",")
	}

	return models.JoinCategories(checkboxes)
}
