package services

import "regexp"

var mobileUserAgent = regexp.MustCompile(`(?i)mobi|android|iphone|ipad|ipod|windows phone|blackberry|opera mini`)

// isMobileUserAgent decides whether the buyer gets the app switch experience.
func isMobileUserAgent(userAgent string) bool {
	return userAgent != "" && mobileUserAgent.MatchString(userAgent)
}
