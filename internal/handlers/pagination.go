package handlers

import (
	"fmt"
	"strconv"
)

// parseFeedParams parses limit/skip query values, defaulting to the first 20
// posts.
func parseFeedParams(limitStr, skipStr string) (int64, int64, error) {
	limit := int64(20)
	skip := int64(0)

	if limitStr != "" {
		l, err := strconv.ParseInt(limitStr, 10, 64)
		if err != nil || l < 1 {
			return 0, 0, fmt.Errorf("invalid limit")
		}
		limit = l
	}

	if skipStr != "" {
		s, err := strconv.ParseInt(skipStr, 10, 64)
		if err != nil || s < 0 {
			return 0, 0, fmt.Errorf("invalid skip")
		}
		skip = s
	}

	return limit, skip, nil
}
