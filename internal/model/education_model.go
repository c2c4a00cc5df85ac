package model

import (
	"strings"
	"time"
)

// Education groups the schools of a resume.
type Education struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Schools   []School  `gorm:"constraint:OnDelete:CASCADE" json:"schools"`
	ResumeID  uint      `gorm:"uniqueIndex;not null" json:"resume_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Education) TableName() string {
	return "educations"
}

func (e *Education) String() string {
	names := make([]string, 0, len(e.Schools))
	for _, s := range e.Schools {
		names = append(names, s.Name)
	}
	return strings.Join(names, " | ")
}

type School struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(30);not null" json:"name"`
	Course      string    `gorm:"type:varchar(50);not null" json:"course"`
	Start       time.Time `gorm:"type:date;not null" json:"start"`
	Finish      time.Time `gorm:"type:date;not null" json:"finish"`
	Practice    string    `gorm:"type:varchar(255)" json:"practice"`
	EducationID uint      `gorm:"index;not null" json:"education_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (s *School) TableName() string {
	return "schools"
}

func (s *School) String() string {
	return s.Name
}
