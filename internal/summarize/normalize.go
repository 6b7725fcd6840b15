package summarize

import "fmt"

// contentCarrier matches reply objects that expose their text behind a
// content accessor.
type contentCarrier interface {
	Content() string
}

// NormalizeReply collapses the hosted-client reply shapes into one string.
// Client libraries have shipped plain strings, content-bearing objects and
// raw mappings for the same call across versions; this is the single place
// that skew is absorbed.
func NormalizeReply(reply any) string {
	switch r := reply.(type) {
	case nil:
		return ""
	case string:
		return r
	case contentCarrier:
		return r.Content()
	case map[string]any:
		if content, ok := r["content"].(string); ok {
			return content
		}
		return fmt.Sprint(r)
	default:
		return fmt.Sprint(r)
	}
}
