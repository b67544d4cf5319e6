package utils

import "time"

// NowUnixSeconds is the ledger timestamp source: seconds since the Unix
// epoch, as stored on every entity.
func NowUnixSeconds() uint64 {
	return uint64(time.Now().Unix())
}
