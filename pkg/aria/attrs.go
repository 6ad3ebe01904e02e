package aria

import (
	"fmt"
	"html"
	"sort"
	"strings"
)

// Attrs is an attribute set ready to be spread onto an element. Values are
// strings or booleans. A true boolean renders as a bare attribute, false and
// empty strings are omitted; aria-* booleans are stored as "true"/"false"
// strings by the descriptors so they survive rendering.
type Attrs map[string]any

// Merge returns a new set with the entries of others layered over a.
func (a Attrs) Merge(others ...Attrs) Attrs {
	out := make(Attrs, len(a))
	for key, value := range a {
		out[key] = value
	}
	for _, other := range others {
		for key, value := range other {
			out[key] = value
		}
	}
	return out
}

// String renders the set as HTML attributes, id first and the rest sorted
// by name. The result starts with a space when non-empty.
func (a Attrs) String() string {
	if len(a) == 0 {
		return ""
	}
	keys := make([]string, 0, len(a))
	for key := range a {
		if key == "id" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	if _, ok := a["id"]; ok {
		keys = append([]string{"id"}, keys...)
	}

	var b strings.Builder
	for _, key := range keys {
		switch value := a[key].(type) {
		case nil:
		case bool:
			if value {
				b.WriteByte(' ')
				b.WriteString(key)
			}
		case string:
			if value == "" {
				continue
			}
			writeAttr(&b, key, value)
		case fmt.Stringer:
			if s := value.String(); s != "" {
				writeAttr(&b, key, s)
			}
		default:
			writeAttr(&b, key, fmt.Sprint(value))
		}
	}
	return b.String()
}

func writeAttr(b *strings.Builder, key, value string) {
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(value))
	b.WriteByte('"')
}

func boolString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
