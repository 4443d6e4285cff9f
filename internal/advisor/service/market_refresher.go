package service

import (
	"context"

	"crypto-advisor/pkg/logger"

	"github.com/robfig/cron/v3"
)

// MarketRefresher periodically refreshes the market snapshot in the background.
type MarketRefresher interface {
	Start(ctx context.Context) error
}

// NewMarketRefresher creates a refresher that runs on the given cron spec.
func NewMarketRefresher(marketSvc MarketService, spec string, log *logger.Logger) MarketRefresher {
	return &marketRefresher{
		marketSvc: marketSvc,
		spec:      spec,
		logger:    log,
		cron: cron.New(cron.WithParser(
			cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor),
		)),
	}
}

type marketRefresher struct {
	marketSvc MarketService
	spec      string
	logger    *logger.Logger
	cron      *cron.Cron
}

// Start schedules the refresh job and blocks until ctx is done. Runs may
// overlap; the last one to finish wins the cache write.
func (r *marketRefresher) Start(ctx context.Context) error {
	_, err := r.cron.AddFunc(r.spec, func() {
		snapshot := r.marketSvc.Refresh(ctx)
		r.logger.Debug("Market snapshot refreshed",
			logger.IntField("assets", len(snapshot.Assets)),
			logger.Field("fallback", snapshot.Fallback),
		)
	})
	if err != nil {
		return err
	}

	r.logger.Info("Market refresher starting", logger.StringField("spec", r.spec))
	r.cron.Start()

	<-ctx.Done()
	r.logger.Info("Market refresher stopping")
	<-r.cron.Stop().Done()
	return nil
}
