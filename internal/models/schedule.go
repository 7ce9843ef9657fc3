package models

import "time"

type Schedule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DoctorID uint   `gorm:"not null;index" json:"doctor_id"`
	Doctor   Doctor `gorm:"foreignKey:DoctorID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Day         int    `gorm:"not null" json:"day"`
	StartTime   string `gorm:"size:5;not null" json:"start_time"`
	EndTime     string `gorm:"size:5;not null" json:"end_time"`
	IsAvailable bool   `gorm:"not null" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
