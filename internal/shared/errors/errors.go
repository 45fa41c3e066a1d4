package errors

import "errors"

var (
	ErrMissingBotToken      = errors.New("TELEGRAM_BOT_TOKEN environment variable is required")
	ErrMissingDatabaseURL   = errors.New("DATABASE_URL is required for the postgres storage backend")
	ErrChatNotFound         = errors.New("chat not found")
	ErrIdentityUnavailable  = errors.New("bot identity unavailable")
	ErrTransportLookup      = errors.New("transport lookup failed")
	ErrIneligibleSubject    = errors.New("ineligible subject")
	ErrNoMatchingRule       = errors.New("no matching transition rule")
	ErrUnsupportedBackend   = errors.New("unsupported storage backend")
	ErrAdminListUnavailable = errors.New("admin list unavailable")
)
