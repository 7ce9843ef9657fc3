package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone    string `gorm:"size:20" json:"phone"`
	Role     string `gorm:"size:20;not null;index" json:"role"`
	IsActive bool   `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Doctor and Patient are profiles keyed by the owning user's id, so a doctor
// id and a patient id are both user ids.
type Doctor struct {
	UserID uint `gorm:"primaryKey;autoIncrement:false" json:"id"`
	User   User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	ConsultationFee float64 `gorm:"not null;default:0" json:"consultation_fee"`
	Experience      int     `json:"experience"`
	Info            string  `gorm:"size:500" json:"info"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Patient struct {
	UserID uint `gorm:"primaryKey;autoIncrement:false" json:"id"`
	User   User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Age  *int   `json:"age"`
	Info string `gorm:"size:500" json:"info"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
