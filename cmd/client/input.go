package main

import (
	"strconv"
	"strings"
)

// parseRounds reads the round count typed by the user. Anything that is not a
// number in 1..255 falls back to def; "exit" asks to quit.
func parseRounds(input string, def uint8) (rounds uint8, quit bool) {
	input = strings.TrimSpace(input)
	if strings.EqualFold(input, "exit") {
		return 0, true
	}
	n, err := strconv.ParseUint(input, 10, 8)
	if err != nil || n == 0 {
		return def, false
	}
	return uint8(n), false
}
