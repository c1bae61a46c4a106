package services

import (
	"math"
	"strings"
)

const UnboundedLogLimit = 0

func ParseLogLimit(raw string) (int, error) {
	if strings.TrimSpace(raw) == "" {
		return UnboundedLogLimit, nil
	}
	limit, ok := parseLeadingInt(raw)
	if !ok {
		return 0, ErrLimitNotNumber
	}
	return limit, nil
}

func storeLimit(limit int) int {
	switch {
	case limit == math.MinInt:
		return math.MaxInt
	case limit < 0:
		return -limit
	}
	return limit
}
