package middleware

import "github.com/lestrrat-go/accesslog"

// AccessLog logs each request served by the shell through
// `github.com/lestrrat-go/accesslog`.
func AccessLog() Interface {
	return accesslog.New()
}
