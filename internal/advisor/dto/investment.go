package dto

import "time"

// InvestmentStatus is the lifecycle state of a recorded investment.
type InvestmentStatus string

const (
	InvestmentActive InvestmentStatus = "active"
	InvestmentSold   InvestmentStatus = "sold"
)

// UserProfile is the investor's declared preferences.
type UserProfile struct {
	ID              string      `json:"id"`
	RiskProfile     RiskProfile `json:"risk_profile"`
	InvestmentGoals []string    `json:"investment_goals"`
	Budget          float64     `json:"budget"`
	Timeframe       Timeframe   `json:"timeframe"`
}

// InvestmentRecord is one position in the user's investment history.
type InvestmentRecord struct {
	ID            string           `json:"id"`
	UserID        string           `json:"user_id"`
	CryptoID      string           `json:"crypto_id"`
	Amount        float64          `json:"amount"`
	PurchasePrice float64          `json:"purchase_price"`
	CurrentPrice  float64          `json:"current_price"`
	PurchaseDate  time.Time        `json:"purchase_date"`
	Status        InvestmentStatus `json:"status"`
	Performance   float64          `json:"performance"`
	Success       bool             `json:"success"`
}

// ExecuteInvestmentRequest is the body of POST /investments.
type ExecuteInvestmentRequest struct {
	UserID   string  `json:"user_id"`
	CryptoID string  `json:"crypto_id"`
	Amount   float64 `json:"amount"`
	Price    float64 `json:"price"`
}

// ExecuteInvestmentResponse reports the outcome of an investment.
type ExecuteInvestmentResponse struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Investment *InvestmentRecord `json:"investment,omitempty"`
}

// FeedbackRequest is the body of POST /investments/:id/feedback.
type FeedbackRequest struct {
	Performance float64 `json:"performance"`
	Success     bool    `json:"success"`
	UserRating  *int    `json:"user_rating,omitempty"` // 1 to 5
	Comments    string  `json:"comments,omitempty"`
}

// FeedbackResponse acknowledges stored feedback.
type FeedbackResponse struct {
	Success bool `json:"success"`
}

// PortfolioSummary aggregates a user's investment history.
type PortfolioSummary struct {
	UserID             string  `json:"user_id"`
	Positions          int     `json:"positions"`
	TotalInvested      float64 `json:"total_invested"`
	TotalValue         float64 `json:"total_value"`
	ProfitLoss         float64 `json:"profit_loss"`
	PerformancePercent float64 `json:"performance_percent"`
	BestAsset          string  `json:"best_asset,omitempty"`
	BestPerformance    float64 `json:"best_performance,omitempty"`
}
