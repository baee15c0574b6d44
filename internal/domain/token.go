package domain

import "time"

// AccessToken is a short-lived bearer credential for the processor API. It lives
// for one request unless the token cache is enabled.
type AccessToken struct {
	Value     string
	ExpiresAt time.Time
}

// Valid reports whether the token can still be used, leaving margin for the
// request that is about to carry it.
func (t *AccessToken) Valid(now time.Time, margin time.Duration) bool {
	if t == nil || t.Value == "" {
		return false
	}
	if t.ExpiresAt.IsZero() {
		return false
	}
	return now.Add(margin).Before(t.ExpiresAt)
}

// String hides the bearer value from fmt and slog output.
func (t *AccessToken) String() string {
	return "[REDACTED]"
}
