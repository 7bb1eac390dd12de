package catalog

import "strconv"

// ParsePrice extracts the integer amount from a display price string such
// as "2 500 ₽". Strings without digits parse to 0.
func ParsePrice(s string) int {
	digits := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			digits = append(digits, s[i])
		}
	}
	if len(digits) == 0 {
		return 0
	}
	n, err := strconv.Atoi(string(digits))
	if err != nil {
		return 0
	}
	return n
}

// FormatPrice renders an amount in the wire format "<integer> ₽".
func FormatPrice(n int) string {
	return strconv.Itoa(n) + " ₽"
}
