package model

import (
	"fmt"
	"time"
)

type Personal struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Image       string     `gorm:"type:varchar(200)" json:"image"`
	Surname     string     `gorm:"type:varchar(50);not null" json:"surname"`
	Name        string     `gorm:"type:varchar(50);not null" json:"name"`
	Patronymic  string     `gorm:"type:varchar(50)" json:"patronymic"`
	Gender      string     `gorm:"type:varchar(10);not null;check:gender IN ('male','female')" json:"gender"`
	Birthdate   *time.Time `gorm:"type:date" json:"birthdate"`
	Location    string     `gorm:"type:varchar(100)" json:"location"`
	Citizenship string     `gorm:"type:varchar(20)" json:"citizenship"`
	About       string     `gorm:"type:varchar(100)" json:"about"`
	ResumeID    uint       `gorm:"uniqueIndex;not null" json:"resume_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (p *Personal) TableName() string {
	return "personal"
}

func (p *Personal) String() string {
	return fmt.Sprintf("%s %s", p.Surname, p.Name)
}
