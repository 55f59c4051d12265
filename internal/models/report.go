package models

import (
	"time"
)

// Report is a single citizen-submitted incident record. Reporter contact
// fields are free text and deliberately not linked to the users table.
type Report struct {
	ID               uint64    `gorm:"primarykey" json:"id"`
	Title            string    `gorm:"not null" json:"title"`
	Description      string    `gorm:"type:text;not null" json:"description"`
	DateTime         string    `gorm:"type:varchar(50)" json:"date_time"`
	Categories       string    `gorm:"type:varchar(255)" json:"categories"`
	Location         string    `gorm:"type:varchar(255)" json:"location"`
	LocationLandmark string    `gorm:"type:varchar(255)" json:"location_landmark"`
	FullName         string    `gorm:"type:varchar(255)" json:"full_name"`
	Email            string    `gorm:"type:varchar(255)" json:"email"`
	Phone            string    `gorm:"type:varchar(50)" json:"phone"`
	NewsLink         string    `gorm:"type:text" json:"news_link"`
	MediaURL         string    `gorm:"type:text" json:"media_url"`
	CreatedAt        time.Time `json:"created_at"`
}

func (Report) TableName() string {
	return "reports"
}
