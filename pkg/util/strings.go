package util

import "strings"

// SplitTrimmed splits s on sep, trims whitespace and drops empty items
func SplitTrimmed(s string, sep string) []string {
	var list []string

	for _, item := range strings.Split(s, sep) {
		item = strings.TrimSpace(item)

		if item != "" {
			list = append(list, item)
		}
	}

	return list
}
