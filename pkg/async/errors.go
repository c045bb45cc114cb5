package async

import "errors"

// ErrTimeout is returned by AwaitWithTimeout when the computation outlives the timeout.
var ErrTimeout = errors.New("async: operation timed out")
