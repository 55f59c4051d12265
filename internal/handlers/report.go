package handlers

import (
	"net/http"

	"github.com/bantayan/disaster-report-api/internal/dto"
	apierrors "github.com/bantayan/disaster-report-api/internal/errors"
	"github.com/bantayan/disaster-report-api/internal/services"
	"github.com/gin-gonic/gin"
)

// ReportHandler coordinates report submission and listing.
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// Submit stores a new incident report. Accepts JSON or form-encoded bodies;
// the HTML form on / posts here.
func (h *ReportHandler) Submit(c *gin.Context) {
	var req dto.SubmitReportRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "invalid request body")
		return
	}

	_, err := h.reportService.Submit(services.SubmitReportInput{
		Title:            req.Title,
		Description:      req.Description,
		DateTime:         req.DateTime,
		Categories:       req.Categories,
		Checkboxes:       req.CheckboxSet(),
		Location:         req.Location,
		LocationLandmark: req.LocationLandmark,
		FullName:         req.FullName,
		Email:            req.Email,
		Phone:            req.Phone,
		NewsLink:         req.NewsLink,
		MediaURL:         req.MediaURL,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Report submitted successfully",
	})
}

// List returns every stored report, most recent first.
func (h *ReportHandler) List(c *gin.Context) {
	reports, err := h.reportService.List()
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, reports)
}
