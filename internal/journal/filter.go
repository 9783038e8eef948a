package journal

import "strings"

// Filter returns the trades whose symbol, account, or any tag contains the
// query, case-insensitively. An empty query returns the input unchanged.
func Filter(trades []Trade, query string) []Trade {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return trades
	}

	filtered := make([]Trade, 0, len(trades))
	for _, t := range trades {
		if matches(t, query) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

func matches(t Trade, query string) bool {
	if strings.Contains(strings.ToLower(t.Symbol), query) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Account), query) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
