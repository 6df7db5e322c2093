package templates

import "strconv"

func formatCount(n int) string {
	return strconv.Itoa(n)
}
