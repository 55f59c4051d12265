package dto

import (
	"github.com/bantayan/disaster-report-api/internal/models"
)

// SubmitReportRequest binds from JSON or form-encoded bodies. Categories may
// arrive as an explicit list or as per-category checkbox booleans; the
// checkbox field names are the lower-cased, underscore-joined vocabulary
// entries.
type SubmitReportRequest struct {
	Title            string   `json:"title" form:"title"`
	Description      string   `json:"description" form:"description"`
	DateTime         string   `json:"date_time" form:"date_time"`
	Categories       []string `json:"categories" form:"categories"`
	Earthquake       bool     `json:"earthquake" form:"earthquake"`
	FlashFlood       bool     `json:"flash_flood" form:"flash_flood"`
	ForestFire       bool     `json:"forest_fire" form:"forest_fire"`
	Accident         bool     `json:"accident" form:"accident"`
	Others           bool     `json:"others" form:"others"`
	Location         string   `json:"location" form:"location"`
	LocationLandmark string   `json:"location_landmark" form:"location_landmark"`
	FullName         string   `json:"full_name" form:"full_name"`
	Email            string   `json:"email" form:"email"`
	Phone            string   `json:"phone" form:"phone"`
	NewsLink         string   `json:"news_link" form:"news_link"`
	MediaURL         string   `json:"media_url" form:"media_url"`
}

// CheckboxSet maps the boolean checkbox fields onto the category vocabulary.
func (r SubmitReportRequest) CheckboxSet() map[models.Category]bool {
	return map[models.Category]bool{
		models.CategoryEarthquake: r.Earthquake,
		models.CategoryFlashFlood: r.FlashFlood,
		models.CategoryForestFire: r.ForestFire,
		models.CategoryAccident:   r.Accident,
		models.CategoryOthers:     r.Others,
	}
}
