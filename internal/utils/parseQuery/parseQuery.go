package utils

import "strconv"

func ParseLimit(s string) int {
	limit, err := strconv.Atoi(s)
	if err != nil || limit <= 0 {
		return 0
	}

	return limit
}

// ParsePage never returns less than 1.
func ParsePage(s string) int {
	page, err := strconv.Atoi(s)
	if err != nil || page < 1 {
		return 1
	}

	return page
}
