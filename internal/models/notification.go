package models

import "time"

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReceiverID uint `gorm:"not null;index" json:"receiver_id"`
	Receiver   User `gorm:"foreignKey:ReceiverID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Message  string     `gorm:"type:text;not null" json:"message"`
	Type     string     `gorm:"size:20;not null" json:"type"`
	Date     time.Time  `gorm:"not null;index" json:"date"`
	IsRead   bool       `gorm:"not null;default:false" json:"is_read"`
	DateRead *time.Time `json:"date_read"`
}
