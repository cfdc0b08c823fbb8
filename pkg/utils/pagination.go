package utils

import "strconv"

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil || result < 1 {
		return defaultValue
	}

	return result
}

// ParsePagination reads page and per_page query values, clamping per_page.
func ParsePagination(pageStr, perPageStr string) (page, perPage int) {
	page = ParseInt(pageStr, 1)
	perPage = ParseInt(perPageStr, DefaultPerPage)
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}

func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

func CalculateOffset(page, perPage int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * perPage
}
