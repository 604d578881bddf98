// Package validation provides per-question checks on submitted answers.
package validation

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jonathan/screening-engine/internal/types"
)

// isHTTPURL reports whether raw parses as an absolute http or https URL.
func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// hostMatchesAny reports whether the URL's host contains at least one of the
// listed domains. Unparseable URLs never match; the shape check has already
// reported them.
func hostMatchesAny(raw string, domains []string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Host)
	for _, d := range domains {
		if strings.Contains(host, strings.ToLower(d)) {
			return true
		}
	}
	return false
}

func validateURLList(q *types.Question, ans types.Answer) *types.ValidationError {
	list, ok := ans.(types.StringListAnswer)
	if !ok {
		return fail(q, ShapeMessage(q.Type))
	}

	var invalid []string
	for _, raw := range list.Values {
		if !isHTTPURL(raw) {
			invalid = append(invalid, raw)
		}
	}
	if len(invalid) > 0 {
		return fail(q, fmt.Sprintf("Invalid URLs: %s", strings.Join(invalid, ", ")))
	}

	cfg := q.Config.URLs
	if cfg == nil {
		return nil
	}

	if cfg.MaxURLs != nil && len(list.Values) > *cfg.MaxURLs {
		return fail(q, fmt.Sprintf("At most %d links allowed", *cfg.MaxURLs))
	}

	if len(cfg.RequiredDomains) > 0 {
		for _, raw := range list.Values {
			if !hostMatchesAny(raw, cfg.RequiredDomains) {
				return fail(q, fmt.Sprintf("Links must be from: %s", strings.Join(cfg.RequiredDomains, ", ")))
			}
		}
	}

	return nil
}
