package common

const (
	RedisKeyMarketSnapshot = "market:snapshot"
	RedisKeyChatSession    = "chat:session:%s"

	LocalCacheKeyMarketSnapshot = "market_snapshot"

	DefaultUserID = "user-123"

	// MarketRefreshSpec is the default cron spec of the background market refresher.
	MarketRefreshSpec = "@every 60s"
)
