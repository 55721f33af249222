package lifecycle

import "time"

// DefaultTimeout bounds start/stop hooks such as DB ping and server shutdown.
const DefaultTimeout = 10 * time.Second
