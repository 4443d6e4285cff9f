package repository

import (
	"context"
	"errors"

	"crypto-advisor/internal/entity"

	"gorm.io/gorm"
)

// NewInvestmentRepository creates a new GORM-based investment repository.
func NewInvestmentRepository(db *gorm.DB) InvestmentRepository {
	return &investmentRepository{db: db}
}

type investmentRepository struct {
	db *gorm.DB
}

// FindByUserID lists a user's investments, oldest purchase first.
func (r *investmentRepository) FindByUserID(ctx context.Context, userID string) ([]entity.Investment, error) {
	var investments []entity.Investment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("purchase_date ASC").
		Find(&investments).Error
	if err != nil {
		return nil, err
	}
	return investments, nil
}

// FindByID retrieves an investment by its ID.
func (r *investmentRepository) FindByID(ctx context.Context, id string) (*entity.Investment, error) {
	var investment entity.Investment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&investment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &investment, nil
}

// Create inserts a new investment.
func (r *investmentRepository) Create(ctx context.Context, investment *entity.Investment) error {
	return r.db.WithContext(ctx).Create(investment).Error
}

// CreateFeedback stores feedback and copies the reported outcome onto the investment.
func (r *investmentRepository) CreateFeedback(ctx context.Context, feedback *entity.InvestmentFeedback) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.Investment{}).
			Where("id = ?", feedback.InvestmentID).
			Updates(map[string]interface{}{
				"performance": feedback.Performance,
				"success":     feedback.Success,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Create(feedback).Error
	})
}
