package helper

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// NumericTruthy meniru Boolean(Number(raw)) milik JavaScript untuk filter query:
// "" → false, "0" → false, "2" → true, "abc" (NaN) → false, "0x10" → true.
func NumericTruthy(raw string) bool {
	s := strings.TrimFunc(raw, unicode.IsSpace)
	if s == "" {
		return false
	}

	switch s {
	case "Infinity", "+Infinity", "-Infinity":
		return true
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			digits := s[2:]
			if strings.Contains(digits, "_") {
				return false
			}
			n, err := strconv.ParseUint(digits, base, 64)
			if err != nil {
				// angka yang terlalu besar tetap bukan nol
				return errors.Is(err, strconv.ErrRange)
			}
			return n != 0
		}
	}

	if !decimalLiteral.MatchString(s) {
		return false
	}
	f, _ := strconv.ParseFloat(s, 64)
	return f != 0 && !math.IsNaN(f)
}
