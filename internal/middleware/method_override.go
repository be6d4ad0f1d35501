package middleware

import (
	"net/http"
	"strings"
)

// MethodOverrideField is the hidden form field HTML forms use to send
// PATCH, PUT and DELETE.
const MethodOverrideField = "_method"

var overridable = map[string]bool{
	http.MethodPatch:  true,
	http.MethodPut:    true,
	http.MethodDelete: true,
}

// MethodOverride rewrites form POSTs carrying a _method field before they
// reach next. It wraps the engine rather than running as Gin middleware
// because Gin matches the route before any middleware runs.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && isForm(r) {
			method := strings.ToUpper(r.PostFormValue(MethodOverrideField))
			if overridable[method] {
				r.Method = method
			}
		}
		next.ServeHTTP(w, r)
	})
}

func isForm(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return strings.HasPrefix(ct, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(ct, "multipart/form-data")
}
