package controller

import (
	"fmt"
	"net/url"
	"strconv"
)

func parseLimit(q url.Values, defaultLimit, maxLimit int) (int, error) {
	if !q.Has("limit") {
		return defaultLimit, nil
	}

	limit, err := strconv.ParseInt(q.Get("limit"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("unable to parse limit from query: %w", err)
	}
	if limit < 1 {
		return 0, fmt.Errorf("invalid limit value [%d]", limit)
	}
	if limit > int64(maxLimit) {
		return 0, fmt.Errorf("limit [%d] exceeds maximum [%d]", limit, maxLimit)
	}

	return int(limit), nil
}
