package model

import "time"

// Contact values are unique across all resumes. Empty values are stored as
// NULL so they never collide.
type Contact struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Phone     *string   `gorm:"type:varchar(30);uniqueIndex" json:"phone"`
	Email     *string   `gorm:"type:varchar(120);uniqueIndex" json:"email"`
	Telegram  *string   `gorm:"type:varchar(30);uniqueIndex" json:"telegram"`
	SNProfile *string   `gorm:"column:sn_profile;type:varchar(120);uniqueIndex" json:"sn_profile"`
	ResumeID  uint      `gorm:"uniqueIndex;not null" json:"resume_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Contact) TableName() string {
	return "contacts"
}

func (c *Contact) String() string {
	for _, v := range []*string{c.Phone, c.Email, c.Telegram, c.SNProfile} {
		if v != nil && *v != "" {
			return *v
		}
	}
	return ""
}
