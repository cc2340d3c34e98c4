package api

import "Peakfuel/internal/api/handler"

// HandlersGroup bundles the initialized handler instances for the router.
type HandlersGroup struct {
	UserHandler         *handler.UserHandler
	TierHandler         *handler.TierHandler
	PostHandler         *handler.PostHandler
	EngagementHandler   *handler.EngagementHandler
	MediaHandler        *handler.MediaHandler
	NotificationHandler *handler.NotificationHandler
}
