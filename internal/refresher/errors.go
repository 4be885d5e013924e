// Package refresher runs a periodic task that keeps the cached stats
// snapshot current.
package refresher

import "errors"

var (
	ErrRefresherAlreadyRunning = errors.New("refresher is already running")
	ErrRefresherNotRunning     = errors.New("refresher is not running")
)
