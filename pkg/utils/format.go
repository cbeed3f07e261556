package utils

import "strconv"

// Plural formats a count with its noun: "1 turn", "3 turns"
func Plural(n int, singular string) string {
	if n == 1 {
		return "1 " + singular
	}
	return strconv.Itoa(n) + " " + singular + "s"
}
