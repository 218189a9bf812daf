package errors

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxContentURILength bounds content URIs before they are sent to the service.
const maxContentURILength = 2048

// ValidateLanguage checks an optional language override.
// An empty code means "let the service detect the language" and is valid.
// Otherwise the code must be a three-letter ISO 639-3 code such as "eng".
func ValidateLanguage(code string) error {
	if code == "" {
		return nil
	}
	if len(code) != 3 {
		return New(ErrCodeConfiguration, "invalid language %q (expected a three-letter ISO 639-3 code)", code)
	}
	for _, r := range code {
		if r < 'a' || r > 'z' {
			return New(ErrCodeConfiguration, "invalid language %q (expected lowercase letters only)", code)
		}
	}
	return nil
}

// NormalizeContentURI validates a content URI and returns it in escaped form.
//
// Surrounding whitespace is trimmed and non-ASCII characters in the path,
// query and fragment are percent-encoded, since the service may reject raw
// non-Latin characters. Hosts must already be ASCII.
// Already-escaped input is left as is. Only absolute http and https URIs are
// accepted.
func NormalizeContentURI(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", New(ErrCodeConfiguration, "content URI cannot be empty")
	}
	if len(s) > maxContentURILength {
		return "", New(ErrCodeConfiguration, "content URI too long (max %d characters)", maxContentURILength)
	}
	for _, r := range s {
		if unicode.IsControl(r) || r == ' ' {
			return "", New(ErrCodeConfiguration, "content URI contains whitespace or control characters")
		}
	}

	u, err := url.Parse(s)
	if err != nil {
		return "", Wrap(ErrCodeConfiguration, err, "invalid content URI")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", New(ErrCodeConfiguration, "content URI must use http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return "", New(ErrCodeConfiguration, "content URI has no host")
	}
	if !isASCII(u.Host) {
		return "", New(ErrCodeConfiguration, "content URI host %q must be ASCII (use its xn-- form)", u.Host)
	}
	u.RawQuery = escapeNonASCII(u.RawQuery)
	return u.String(), nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// escapeNonASCII percent-encodes bytes outside ASCII and leaves the rest,
// including existing escapes and query separators, untouched.
func escapeNonASCII(s string) string {
	if isASCII(s) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= utf8.RuneSelf {
			fmt.Fprintf(&b, "%%%02X", c)
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}
