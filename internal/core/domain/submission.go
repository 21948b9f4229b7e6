package domain

import "time"

// Submission is a single contact-form entry.
//
// SubmittedAt is set once at creation and never updated; the only field an
// admin may mutate afterwards is IsRead.
type Submission struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Email       string    `json:"email" gorm:"size:120;not null;index"`
	Service     string    `json:"service" gorm:"size:100;not null"`
	Message     string    `json:"message" gorm:"type:text;not null"`
	SubmittedAt time.Time `json:"submitted_at" gorm:"not null;index"`
	IsRead      bool      `json:"is_read" gorm:"not null;default:false;index"`
	IPAddress   string    `json:"ip_address,omitempty" gorm:"size:45"`
}

func (Submission) TableName() string {
	return "contact_submissions"
}

// ServiceCount is one row of the per-service submission breakdown.
type ServiceCount struct {
	Service string `json:"service"`
	Count   int64  `json:"count"`
}
