package token

import "fmt"

const (
	// maxExpireWindow is the furthest a token expiry may lie in the future,
	// in seconds (30 days).
	maxExpireWindow = 30 * 24 * 60 * 60

	// maxConnectionData is the platform's limit on connection metadata.
	maxConnectionData = 1000
)

// validateExpireTime reports whether an expire_time field should be emitted.
// Zero means "platform default" and emits nothing. A non-zero value must fall
// strictly after createTime and no more than 30 days after now.
func validateExpireTime(expireTime, createTime, now int64) (bool, error) {
	if expireTime == 0 {
		return false, nil
	}
	if expireTime <= createTime || expireTime > now+maxExpireWindow {
		return false, fmt.Errorf("%w: %d", ErrInvalidExpireTime, expireTime)
	}
	return true, nil
}

// validateConnectionData reports whether a connection_data field should be
// emitted. Empty data emits nothing.
func validateConnectionData(data string) (bool, error) {
	if data == "" {
		return false, nil
	}
	if len(data) > maxConnectionData {
		return false, fmt.Errorf("%w: %d characters", ErrConnectionDataTooLong, len(data))
	}
	return true, nil
}
