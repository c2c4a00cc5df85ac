package model

import (
	"fmt"
	"time"
)

// Experience groups the jobs of a resume.
type Experience struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Jobs      []Job     `gorm:"constraint:OnDelete:CASCADE" json:"jobs"`
	ResumeID  uint      `gorm:"uniqueIndex;not null" json:"resume_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Experience) TableName() string {
	return "experiences"
}

func (e *Experience) String() string {
	return fmt.Sprintf("Experience %d", e.ID)
}

type Job struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Name           string     `gorm:"type:varchar(30);not null" json:"name"`
	Location       string     `gorm:"type:varchar(255)" json:"location"`
	Specialization string     `gorm:"type:varchar(27);not null;check:specialization IN ('development','testing','analytics','design','management','security','ai')" json:"specialization"`
	Grade          string     `gorm:"type:varchar(16);not null;check:grade IN ('no','intern','junior','middle','senior','lead')" json:"grade"`
	Position       string     `gorm:"type:varchar(30)" json:"position"`
	Start          time.Time  `gorm:"type:date;not null" json:"start"`
	Finish         *time.Time `gorm:"type:date" json:"finish"`
	About          string     `gorm:"type:varchar(255)" json:"about"`
	Skills         string     `gorm:"type:varchar(255)" json:"skills"`
	ExperienceID   uint       `gorm:"index;not null" json:"experience_id"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (j *Job) TableName() string {
	return "jobs"
}

func (j *Job) String() string {
	return j.Name
}
