package render

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	contentPolicyOnce sync.Once
	contentPolicy     *bluemonday.Policy
)

// SanitizeContent strips everything from label, hint and error markup except
// inline formatting and links. Plain text passes through escaped.
func SanitizeContent(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(contentSanitizer().Sanitize(trimmed))
}

func contentSanitizer() *bluemonday.Policy {
	contentPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("strong", "em", "b", "i", "code", "kbd", "abbr", "br", "span", "small")
		policy.AllowAttrs("title").OnElements("abbr")
		policy.AllowAttrs("class").OnElements("span", "code")

		policy.AllowAttrs("href").OnElements("a")
		policy.AllowStandardURLs()
		policy.RequireNoFollowOnLinks(true)
		policy.AddTargetBlankToFullyQualifiedLinks(true)

		contentPolicy = policy
	})
	return contentPolicy
}
