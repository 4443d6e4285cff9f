package entity

import (
	"time"

	"github.com/lib/pq"
)

// UserProfile stores an investor's declared preferences.
type UserProfile struct {
	ID              string         `gorm:"primaryKey" json:"id"`
	RiskProfile     string         `gorm:"not null" json:"risk_profile"`
	InvestmentGoals pq.StringArray `gorm:"column:investment_goals;type:text[]" json:"investment_goals"`
	Budget          float64        `gorm:"not null" json:"budget"`
	Timeframe       string         `gorm:"not null" json:"timeframe"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
