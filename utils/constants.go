// File: utils/constants.go
package utils

import "time"

// QuoteSessionPrefix is the prefix used for Redis quote-session keys.
const QuoteSessionPrefix = "quote:session:"

// GeocodeTimeout bounds a single call to the geocoding provider.
const GeocodeTimeout = 5 * time.Second
