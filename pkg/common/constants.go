package common

// Persisted state keys. Values are JSON encoded; a missing key means "use the default".
const (
	KeyAutoRefreshSettings = "autoRefreshSettings"
	KeyAutoTradeSettings   = "autoTradeSettings"
	KeyScraperSettings     = "scraperSettings"
	KeyBuyAlert            = "buyAlert"
	KeySellAlert           = "sellAlert"
	KeyAlertMethods        = "alertMethods"
	KeyWatchlist           = "myStocks"
)

// Notification delivery methods a user can select.
const (
	AlertMethodInApp    = "in-app"
	AlertMethodTelegram = "telegram"
	AlertMethodStream   = "stream"
)

const (
	RedisStreamNotifications = "dashboard.notifications"
	DefaultKeyPrefix         = "dashboard:"
)
