package utils

import "strconv"

// FormatPrice renders an integer price as a dollar amount with thousands
// separators, e.g. 1200000 -> "$1,200,000".
func FormatPrice(price int) string {
	s := strconv.Itoa(price)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}

	if neg {
		return "-$" + string(out)
	}
	return "$" + string(out)
}
