package utils

import "strings"

func StrEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// BearerToken strips the scheme prefix from an Authorization header value.
func BearerToken(header string) string {
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
