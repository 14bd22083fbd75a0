package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ShortDate formats t as an unpadded year-month-day string, e.g. "2024-3-7".
func ShortDate(t time.Time) string {
	return fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month()), t.Day())
}

// InputDate normalizes a stored date into the padded YYYY-MM-DD form used by
// date inputs. Both "2024-3-7" and "2024-03-07" are accepted; anything else
// yields an empty string.
func InputDate(s string) string {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return ""
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return ""
		}
		nums[i] = n
	}

	t := time.Date(nums[0], time.Month(nums[1]), nums[2], 0, 0, 0, 0, time.UTC)
	if t.Year() != nums[0] || int(t.Month()) != nums[1] || t.Day() != nums[2] {
		return ""
	}
	return t.Format("2006-01-02")
}
