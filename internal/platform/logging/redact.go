package logging

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"
)

// sensitiveHeaders lists the lowercase names of headers that carry
// credentials. The HTTP middleware redacts them through IsSensitiveHeader
// and the redactor below masks them by attribute name.
var sensitiveHeaders = []string{
	"authorization",
	"proxy-authorization",
	"x-api-key",
	"x-auth-token",
	"cookie",
	"set-cookie",
}

// IsSensitiveHeader reports whether the header name carries credentials.
// The comparison ignores case.
func IsSensitiveHeader(name string) bool {
	name = strings.ToLower(name)
	for _, h := range sensitiveHeaders {
		if h == name {
			return true
		}
	}
	return false
}

// Customer and credential fields that reach the logs through the delivery
// API payloads or the signed-in user.
var sensitiveFields = []string{
	"token",
	"access_token",
	"refresh_token",
	"password",
	"email",
	"phone",
}

var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	// Three base64url segments of 10+ characters; shorter dotted strings are
	// usually versions.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
)

// newRedactor returns a ReplaceAttr func that masks sensitive attributes by
// name and bearer tokens or JWTs found in any string value.
func newRedactor() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(sensitiveHeaders)+len(sensitiveFields)+3)
	for _, name := range sensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	opts = append(opts,
		masq.WithFieldPrefix("secret"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
	)
	return masq.New(opts...)
}
