// Package urlnorm canonicalizes article links and filters them against
// per-site allow/deny patterns. The normalized form is used as the dedup
// key for discovered articles, so normalization must be idempotent.
package urlnorm

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// ErrInvalidURL indicates the link could not be parsed or resolved
var ErrInvalidURL = errors.New("invalid url")

// ErrInvalidScheme indicates a scheme other than http/https
var ErrInvalidScheme = errors.New("invalid scheme")

// tracking query parameters removed during normalization, exact key match
var trackingParams = map[string]struct{}{
	"utm_source":   {},
	"utm_medium":   {},
	"utm_campaign": {},
	"utm_term":     {},
	"utm_content":  {},
	"fbclid":       {},
	"gclid":        {},
	"ref":          {},
	"source":       {},
}

// Normalize canonicalizes a raw link, optionally resolving it against base.
// A relative link without a base fails. Only http and https are accepted.
// Known tracking query parameters are stripped, all other parameters keep
// their original relative order.
func Normalize(raw, base string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty link", ErrInvalidURL)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}

	if u.Scheme == "" {
		if base == "" {
			return "", fmt.Errorf("%w: relative link %q without base", ErrInvalidURL, raw)
		}
		b, err := url.Parse(strings.TrimSpace(base))
		if err != nil || b.Scheme == "" || b.Host == "" {
			return "", fmt.Errorf("%w: base %q", ErrInvalidURL, base)
		}
		u = b.ResolveReference(u)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: %q", ErrInvalidScheme, u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: %q has no host", ErrInvalidURL, raw)
	}

	u.RawQuery = stripTracking(u.RawQuery)
	return u.String(), nil
}

// stripTracking removes tracking parameters from a raw query string while
// preserving the order and encoding of the remaining parameters. Returns an
// empty string when nothing survives, so the "?" is omitted on re-serialize.
func stripTracking(query string) string {
	if query == "" {
		return ""
	}

	parts := strings.Split(query, "&")
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		key := part
		if i := strings.Index(part, "="); i >= 0 {
			key = part[:i]
		}
		if decoded, err := url.QueryUnescape(key); err == nil {
			key = decoded
		}
		if _, tracking := trackingParams[key]; tracking {
			continue
		}
		kept = append(kept, part)
	}
	return strings.Join(kept, "&")
}

// Match reports whether a URL passes the allow/deny pattern filter. Patterns
// are compiled as case-insensitive regular expressions at match time. With an
// empty allow list every URL passes that stage; a deny match always rejects.
func Match(u string, allow, deny []string) bool {
	if matchAny(u, deny) {
		return false
	}
	if len(allow) == 0 {
		return true
	}
	return matchAny(u, allow)
}

func matchAny(u string, patterns []string) bool {
	for _, p := range patterns {
		if p == "" {
			continue
		}
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			// operator typo in a pattern, skip it rather than reject the URL
			continue
		}
		if re.MatchString(u) {
			return true
		}
	}
	return false
}
