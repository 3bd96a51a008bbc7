// Copyright 2026 The rxsyntax Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lexer

import (
	"strconv"

	"github.com/regexlang/rxsyntax/source"
)

func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
func isOctalDigit(r rune) bool { return r >= '0' && r <= '7' }

// takeDecimal consumes one or more decimal digits, returning them and
// whether anything was consumed.
func takeDecimal(c *source.Cursor) (string, bool) {
	digits := c.TakeWhile(isDigit)
	if digits == "" {
		return "", false
	}
	return digits, true
}

// takeHex consumes hex digits, capped at maxLen (0 means unbounded), and
// returns them; the result is empty if none were consumed.
func takeHex(c *source.Cursor, maxLen int) string {
	n := 0
	return c.TakeWhile(func(r rune) bool {
		if maxLen > 0 && n >= maxLen {
			return false
		}
		if isHexDigit(r) {
			n++
			return true
		}
		return false
	})
}

func parseDecimal(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func parseHexRune(s string) (rune, bool) {
	n, err := strconv.ParseInt(s, 16, 32)
	if err != nil || n < 0 || n > 0x10FFFF {
		return 0, false
	}
	return rune(n), true
}
