package clients

import "time"

const (
	INITIAL_BACKOFF    = 500 * time.Millisecond
	MAX_BACKOFF        = 8 * time.Second
	VALKEY_RETRY_DELAY = 250 * time.Millisecond
	USER_AGENT         = "sentilens-client/1.0 (+https://github.com/spacesedan/sentilens)"
)
