// Package hashtag canonicalizes free-form hashtag strings, whether typed by a
// user or suggested by the generation model.
package hashtag

import (
	"strings"
	"unicode"
)

// MaxTags caps the output; LinkedIn engagement drops off past five tags.
const MaxTags = 5

// Normalize parses a free-form hashtag string into a space-joined list of
// canonical tags: lowercased, exactly one leading '#', duplicates removed with
// the first occurrence winning, capped at MaxTags. Tokens may be separated by
// any mix of commas and whitespace. Normalize is idempotent.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	tokens := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	seen := make(map[string]struct{}, len(tokens))
	tags := make([]string, 0, MaxTags)
	for _, tok := range tokens {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok == "" {
			continue
		}
		tok = "#" + strings.TrimLeft(tok, "#")
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		tags = append(tags, tok)
		if len(tags) == MaxTags {
			break
		}
	}

	return strings.Join(tags, " ")
}
