package models

import "time"

type Lead struct {
	ID         string  `gorm:"type:varchar(24);primaryKey"`
	Email      string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	FirstName  string  `gorm:"type:varchar(100);not null"`
	LastName   string  `gorm:"type:varchar(100);not null"`
	Phone      string  `gorm:"type:varchar(50)"`
	Company    string  `gorm:"type:varchar(255)"`
	Position   string  `gorm:"type:varchar(100)"`
	Stage      string  `gorm:"type:varchar(20);not null;index"`
	Status     string  `gorm:"type:varchar(20);not null;index"`
	Source     string  `gorm:"type:varchar(100);index"`
	Value      float64 `gorm:"type:numeric(14,2);not null;default:0"`
	Notes      *string `gorm:"type:text"`
	AssignedTo *string `gorm:"type:varchar(24)"`
	Country    string  `gorm:"type:varchar(100)"`
	City       string  `gorm:"type:varchar(100)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Lead) TableName() string {
	return "leads"
}
