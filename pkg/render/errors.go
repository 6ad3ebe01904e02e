package render

import (
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-formaria/pkg/model"
)

// ErrorMapping splits a server error payload into block-level messages keyed
// by block id and form-level messages.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// MergeFormErrors concatenates form-level messages, trimming whitespace and
// dropping duplicates while keeping order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

// MapErrorPayload resolves payload keys (dotted paths, JSON pointers, go-errors
// style "$.body.x" paths) against each block's submission name and id.
// Keys that match no block become form-level messages so nothing is lost.
func MapErrorPayload(form model.Form, payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{
		Fields: make(map[string][]string),
	}
	if len(payload) == 0 {
		mapping.Fields = nil
		return mapping
	}

	paths := blockPaths(form)

	// Iterate keys in sorted order so merged message order is stable.
	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, rawPath := range keys {
		messages := normalizeMessages(payload[rawPath])
		if len(messages) == 0 {
			continue
		}

		blockID, formLevel := mapErrorPath(rawPath, paths)
		if formLevel || blockID == "" {
			mapping.Form = append(mapping.Form, messages...)
			continue
		}
		mapping.Fields[blockID] = normalizeMessages(append(mapping.Fields[blockID], messages...))
	}

	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

// blockPaths maps every addressable path to the owning block id. Both the
// submission name and the id address a block; model.Validate rejects forms
// where two blocks share a name.
func blockPaths(form model.Form) map[string]string {
	out := make(map[string]string, len(form.Blocks)*2)
	for _, block := range form.Blocks {
		if block.ID == "" {
			continue
		}
		out[block.ID] = block.ID
		if name := strings.TrimSpace(block.FieldName()); name != "" {
			out[name] = block.ID
		}
	}
	return out
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

func mapErrorPath(raw string, paths map[string]string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if isFormLevelKey(trimmed) {
		return "", true
	}

	segments := parsePathSegments(trimmed)
	if len(segments) == 0 {
		return "", true
	}

	bestPath := ""
	for _, variant := range buildSegmentVariants(segments) {
		if path := longestMatchingPath(variant, paths); path != "" {
			if segmentCount(path) > segmentCount(bestPath) {
				bestPath = path
			}
		}
	}

	if bestPath != "" {
		return paths[bestPath], false
	}
	return "", true
}

func parsePathSegments(path string) []string {
	clean := strings.TrimSpace(path)
	for strings.HasPrefix(clean, "#") || strings.HasPrefix(clean, "/") || strings.HasPrefix(clean, ".") || strings.HasPrefix(clean, "$") {
		clean = clean[1:]
	}

	replacer := strings.NewReplacer("[", ".", "]", "", "//", "/")
	clean = strings.Trim(replacer.Replace(clean), "./")
	if clean == "" {
		return nil
	}

	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			continue
		}
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		out = append(out, segment)
	}
	return out
}

func buildSegmentVariants(segments []string) [][]string {
	var variants [][]string
	seen := make(map[string]struct{}, 4)

	appendVariant := func(candidate []string) {
		if len(candidate) == 0 {
			return
		}
		key := strings.Join(candidate, ".")
		if _, exists := seen[key]; exists {
			return
		}
		seen[key] = struct{}{}
		variants = append(variants, append([]string(nil), candidate...))
	}

	noWrappers := dropWrapperSegments(segments)
	appendVariant(segments)
	appendVariant(noWrappers)
	appendVariant(stripNumericSegments(segments))
	appendVariant(stripNumericSegments(noWrappers))
	return variants
}

var wrapperSegments = map[string]struct{}{
	"body":       {},
	"request":    {},
	"payload":    {},
	"data":       {},
	"attributes": {},
}

func dropWrapperSegments(segments []string) []string {
	out := segments
	for len(out) > 0 {
		if _, ok := wrapperSegments[strings.ToLower(out[0])]; !ok {
			break
		}
		out = out[1:]
	}
	return out
}

func stripNumericSegments(segments []string) []string {
	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		if _, err := strconv.Atoi(segment); err == nil {
			continue
		}
		out = append(out, segment)
	}
	return out
}

func longestMatchingPath(segments []string, paths map[string]string) string {
	for end := len(segments); end > 0; end-- {
		candidate := strings.Join(segments[:end], ".")
		if _, ok := paths[candidate]; ok {
			return candidate
		}
	}
	return ""
}

func segmentCount(path string) int {
	if path == "" {
		return 0
	}
	return strings.Count(path, ".") + 1
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "$", "form", "base", "__all__", "non_field_errors", "non-field-errors":
		return true
	default:
		return false
	}
}
