package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DoctorID uint   `gorm:"not null;index;uniqueIndex:idx_bookings_inspection,priority:1" json:"doctor_id"`
	Doctor   Doctor `gorm:"foreignKey:DoctorID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	PatientID uint    `gorm:"not null;index" json:"patient_id"`
	Patient   Patient `gorm:"foreignKey:PatientID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	// Date is a calendar date, "2006-01-02".
	Date string `gorm:"size:10;not null;index;uniqueIndex:idx_bookings_inspection,priority:2" json:"date"`
	// Day is stored independently of Date (time.Weekday numbering).
	Day  int    `gorm:"not null" json:"day"`
	Time string `gorm:"size:5;not null" json:"time"`

	Amount float64 `gorm:"not null" json:"amount"`
	Status string  `gorm:"size:20;not null;default:'pending';index" json:"status"`

	InspectionNumber *int `gorm:"uniqueIndex:idx_bookings_inspection,priority:3" json:"inspection_number"`

	Diagnosis    *string `gorm:"type:text" json:"diagnosis"`
	Prescription *string `gorm:"type:text" json:"prescription"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
