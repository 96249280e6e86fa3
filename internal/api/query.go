package api

import (
	"net/url"
	"strings"
)

// pair is one query-string key/value. Order matters: pairs render in the
// order given, so callers control the final URL shape.
type pair struct {
	key   string
	value string
}

// queryString renders pairs as "?k=v&...". Pairs with empty values are
// dropped; if nothing survives the result is "" with no "?".
func queryString(pairs []pair) string {
	var b strings.Builder
	for _, p := range pairs {
		if p.value == "" {
			continue
		}
		if b.Len() == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.value))
	}
	return b.String()
}
