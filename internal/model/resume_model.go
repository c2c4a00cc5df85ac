package model

import "time"

// Resume is owned by a User and holds at most one of each section.
type Resume struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	Name           string          `gorm:"type:varchar(255);not null" json:"name"`
	UserID         uint            `gorm:"index;not null" json:"user_id"`
	Personal       *Personal       `gorm:"constraint:OnDelete:CASCADE" json:"personal,omitempty"`
	Specialization *Specialization `gorm:"constraint:OnDelete:CASCADE" json:"specialization,omitempty"`
	Experience     *Experience     `gorm:"constraint:OnDelete:CASCADE" json:"experience,omitempty"`
	Education      *Education      `gorm:"constraint:OnDelete:CASCADE" json:"education,omitempty"`
	Contact        *Contact        `gorm:"constraint:OnDelete:CASCADE" json:"contact,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (r *Resume) TableName() string {
	return "resumes"
}

func (r *Resume) String() string {
	return r.Name
}

// Section is any record attached 1:1 to a resume through resume_id.
type Section interface {
	Personal | Specialization | Experience | Education | Contact
}
