package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Investment is a recorded purchase of a crypto asset.
type Investment struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	UserID        string    `gorm:"not null;index" json:"user_id"`
	CryptoID      string    `gorm:"not null" json:"crypto_id"`
	Amount        float64   `gorm:"not null" json:"amount"`
	PurchasePrice float64   `gorm:"not null" json:"purchase_price"`
	CurrentPrice  float64   `gorm:"not null" json:"current_price"`
	PurchaseDate  time.Time `gorm:"not null" json:"purchase_date"`
	Status        string    `gorm:"not null" json:"status"`
	Performance   float64   `json:"performance"`
	Success       bool      `json:"success"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Investment) TableName() string {
	return "investments"
}

// InvestmentFeedback keeps the raw feedback document submitted for an investment.
type InvestmentFeedback struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	InvestmentID string         `gorm:"not null;index" json:"investment_id"`
	Performance  float64        `json:"performance"`
	Success      bool           `json:"success"`
	Rating       *int           `json:"rating,omitempty"`
	Payload      datatypes.JSON `gorm:"type:jsonb" json:"payload"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (InvestmentFeedback) TableName() string {
	return "investment_feedback"
}
