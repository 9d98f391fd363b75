// utils/http.go
package utils

import (
	"net/http"
	"time"
)

// HTTPClient is the shared client for calls to sibling services (profile
// sync). Generous timeout for slow profile pages.
var HTTPClient = &http.Client{
	Timeout: 30 * time.Second,
}
