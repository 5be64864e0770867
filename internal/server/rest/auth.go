package rest

import (
	"net/http"
	"strings"
)

var tokenSchemes = []string{"Token", "Bearer"}

// tokenFromRequest extracts the value of an "Authorization: Token <v>" or
// "Authorization: Bearer <v>" header. It returns "" when the header is
// missing or uses another scheme; the resolver treats "" as unauthenticated.
func tokenFromRequest(r *http.Request) string {
	scheme, value, ok := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !ok {
		return ""
	}
	for _, s := range tokenSchemes {
		if strings.EqualFold(scheme, s) {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
