package models

import (
	"fmt"
	"regexp"
	"strconv"
)

var isoDurationRe = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// FormatISO8601Duration converts a YouTube duration such as PT1H2M3S into
// H:MM:SS, or M:SS when there are no hours. Input that does not contain a
// PT duration yields an empty string.
func FormatISO8601Duration(iso string) string {
	parts := isoDurationRe.FindStringSubmatch(iso)
	if parts == nil {
		return ""
	}

	h := atoiOrZero(parts[1])
	m := atoiOrZero(parts[2])
	s := atoiOrZero(parts[3])

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
