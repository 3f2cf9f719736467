// Package redact strips credentials and secret-shaped strings from
// values before they are persisted, embedded, or returned to callers.
//
// Redaction walks maps and slices without mutating the input and is
// fail-closed: if the walk panics for any reason the caller gets a safe
// placeholder, never the raw value.
package redact

import (
	"fmt"
	"regexp"
	"strings"
)

// Replacement sentinels. Stable strings — they appear in persisted audit
// rows and API responses, so changing them is a breaking change.
const (
	Redacted       = "[REDACTED]"
	RedactedJWT    = "[REDACTED JWT]"
	RedactedBearer = "[REDACTED BEARER]"
	RedactedKey    = "[REDACTED KEY]"
)

// sensitiveKeys are map keys whose values are always replaced, regardless
// of what the value looks like. Matched case-insensitively.
var sensitiveKeys = map[string]struct{}{
	"token":         {},
	"access_token":  {},
	"refresh_token": {},
	"api_key":       {},
	"secret":        {},
	"password":      {},
	"cookie":        {},
	"authorization": {},
	"auth_token":    {},
}

var (
	jwtPattern    = regexp.MustCompile(`^[A-Za-z0-9-_]+\.[A-Za-z0-9-_]+\.[A-Za-z0-9-_]+$`)
	bearerPattern = regexp.MustCompile(`(?i)^Bearer\s+`)
	vendorKeys    = []*regexp.Regexp{
		regexp.MustCompile(`^sk-[A-Za-z0-9_-]{16,}$`),
		regexp.MustCompile(`^ghp_[A-Za-z0-9]{16,}$`),
	}
)

// Value walks v and returns a redacted copy plus the dotted paths of
// every replaced leaf (list indexes render as "[i]"). v is not mutated.
// On any internal failure the result is {"_error": "redaction_failed"}.
func Value(v any) (out any, paths []string) {
	defer func() {
		if r := recover(); r != nil {
			out = map[string]any{"_error": "redaction_failed"}
			paths = nil
		}
	}()
	out = walk(v, "", &paths)
	return out, paths
}

// Map is a convenience wrapper over Value for JSON-object shaped input.
// A nil map stays nil; a non-map result of the fail-closed path is
// returned as the placeholder map.
func Map(m map[string]any) (map[string]any, []string) {
	if m == nil {
		return nil, nil
	}
	out, applied := Value(m)
	if redacted, ok := out.(map[string]any); ok {
		return redacted, applied
	}
	return map[string]any{"_error": "redaction_failed"}, nil
}

func walk(v any, path string, paths *[]string) any {
	switch item := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(item))
		for k, val := range item {
			p := k
			if path != "" {
				p = path + "." + k
			}
			if _, sensitive := sensitiveKeys[strings.ToLower(k)]; sensitive {
				*paths = append(*paths, p)
				out[k] = Redacted
				continue
			}
			if s, isStr := val.(string); isStr {
				if replacement, hit := matchSecret(s); hit {
					*paths = append(*paths, p)
					out[k] = replacement
					continue
				}
			}
			out[k] = walk(val, p, paths)
		}
		return out
	case []any:
		out := make([]any, len(item))
		for i, val := range item {
			out[i] = walk(val, fmt.Sprintf("%s[%d]", path, i), paths)
		}
		return out
	case string:
		if replacement, hit := matchSecret(item); hit {
			*paths = append(*paths, path)
			return replacement
		}
		return item
	default:
		return v
	}
}

// matchSecret classifies a whole string against the secret-shaped
// patterns. Key name matching happens in walk, not here.
func matchSecret(s string) (string, bool) {
	if len(s) > 20 && jwtPattern.MatchString(s) {
		return RedactedJWT, true
	}
	if bearerPattern.MatchString(s) {
		return RedactedBearer, true
	}
	for _, re := range vendorKeys {
		if re.MatchString(s) {
			return RedactedKey, true
		}
	}
	return "", false
}

// Free-text variants of the secret patterns. These substitute inside a
// larger string instead of matching the whole value.
var (
	textBearerPattern = regexp.MustCompile(`(?i)\bBearer\s+[A-Za-z0-9\-._~+/]{16,}`)
	textJWTPattern    = regexp.MustCompile(`[A-Za-z0-9-_]{8,}\.[A-Za-z0-9-_]{8,}\.[A-Za-z0-9-_]{8,}`)
	textKeyPattern    = regexp.MustCompile(`(sk-[A-Za-z0-9_-]{16,}|ghp_[A-Za-z0-9]{16,})`)
)

// Text applies the secret-shaped patterns to free text. Used on content
// before hashing and embedding, where there is no key structure to go by.
func Text(s string) string {
	if s == "" {
		return s
	}
	s = textBearerPattern.ReplaceAllString(s, RedactedBearer)
	s = textJWTPattern.ReplaceAllString(s, RedactedJWT)
	s = textKeyPattern.ReplaceAllString(s, RedactedKey)
	return s
}
