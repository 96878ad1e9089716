package wakatime

import "errors"

// ErrTransport indicates the durations fetch failed: the server was
// unreachable, returned a non-success status, or sent an unparseable body.
var ErrTransport = errors.New("wakatime request failed")
