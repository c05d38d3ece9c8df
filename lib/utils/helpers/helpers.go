package helpers

import (
	"context"
	"sort"
	"strings"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TrimmedPtr trims s and returns nil for an absent value.
func TrimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	value := strings.TrimSpace(*s)
	return &value
}

func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
