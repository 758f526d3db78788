package validate

import (
	"strconv"
	"strings"
)

// QueryIssue is a single-field query rejection. Unlike payload validation it
// carries one message/detail pair, matching the wire shape
// {message, error}.
type QueryIssue struct {
	Message string
	Detail  string
}

// Pagination never rejects: bad values are silently clamped.
// page floors at 1; limit floors at 1 and ceilings at MaxLimit.
func Pagination(pageStr, limitStr string) (page, limit int) {
	page = DefaultPage
	if n, err := strconv.Atoi(strings.TrimSpace(pageStr)); err == nil && n >= 1 {
		page = n
	}
	limit = DefaultLimit
	if n, err := strconv.Atoi(strings.TrimSpace(limitStr)); err == nil && n >= 1 {
		limit = n
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// PriceFilter parses minPrice/maxPrice. Absent fields stay nil.
func PriceFilter(minStr, maxStr string) (minPrice, maxPrice *float64, issue *QueryIssue) {
	if s := strings.TrimSpace(minStr); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < 0 {
			return nil, nil, &QueryIssue{
				Message: "Invalid minimum price",
				Detail:  "Minimum price must be a non-negative number",
			}
		}
		minPrice = &v
	}
	if s := strings.TrimSpace(maxStr); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < 0 {
			return nil, nil, &QueryIssue{
				Message: "Invalid maximum price",
				Detail:  "Maximum price must be a non-negative number",
			}
		}
		maxPrice = &v
	}
	if minPrice != nil && maxPrice != nil && *minPrice > *maxPrice {
		return nil, nil, &QueryIssue{
			Message: "Invalid price range",
			Detail:  "Minimum price must not exceed maximum price",
		}
	}
	return minPrice, maxPrice, nil
}

// SearchTerm trims the term; a term that trims to empty is dropped entirely.
func SearchTerm(s string) (string, *QueryIssue) {
	clean := strings.TrimSpace(s)
	if clean == "" {
		return "", nil
	}
	if len([]rune(clean)) > 100 {
		return "", &QueryIssue{
			Message: "Invalid search term",
			Detail:  "Search term must be at most 100 characters long",
		}
	}
	return clean, nil
}
