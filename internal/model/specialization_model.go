package model

import "time"

type Specialization struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Readiness       string    `gorm:"type:varchar(21);not null;default:consider;check:readiness IN ('not_looking','looking','consider')" json:"readiness"`
	Salary          int       `json:"salary"`
	Slogan          string    `gorm:"type:varchar(80)" json:"slogan"`
	Specialization  string    `gorm:"type:varchar(27);not null;check:specialization IN ('development','testing','analytics','design','management','security','ai')" json:"specialization"`
	Grade           string    `gorm:"type:varchar(16);not null;check:grade IN ('no','intern','junior','middle','senior','lead')" json:"grade"`
	Skills          string    `gorm:"type:varchar(255);not null" json:"skills"`
	Languages       string    `gorm:"type:varchar(50)" json:"languages"`
	RemoteReady     bool      `json:"remote_ready"`
	RelocationReady bool      `json:"relocation_ready"`
	ResumeID        uint      `gorm:"uniqueIndex;not null" json:"resume_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (s *Specialization) TableName() string {
	return "specializations"
}

func (s *Specialization) String() string {
	return s.Slogan
}
