package measure

import (
	"regexp"
	"strings"
)

var (
	cilindroRe   = regexp.MustCompile(`(?i)\b(cilindro|cil)\b`)
	cilPrefixRe  = regexp.MustCompile(`^cil\s*(.+)$`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	signRe       = regexp.MustCompile(`[+-]`)
)

// Normalize maps a user-typed measure string to the canonical form used for
// catalog comparison. It handles:
//   - "cilindro" / "CILINDRO" / "CIL" → "cil"
//   - commas as decimal separators: "+1,50" → "+1.50"
//   - stray spaces: "+1.50 -4. 50" → "+1.50-4.50" (the space after a leading
//     "cil" token is kept, so "cil -0.50" stays two tokens)
//   - missing decimals: "+150" → "+1.50", "-450" → "-4.50"
//
// The same function is applied to catalog-stored measures before comparison,
// so both sides of a match always pass through identical rules. Normalize is
// pure and idempotent.
func Normalize(input string) string {
	if input == "" {
		return ""
	}

	val := strings.TrimSpace(input)

	val = cilindroRe.ReplaceAllString(val, "cil")
	val = strings.ReplaceAll(val, ",", ".")

	if strings.HasPrefix(val, "cil") {
		if parts := cilPrefixRe.FindStringSubmatch(val); parts != nil {
			val = "cil " + whitespaceRe.ReplaceAllString(parts[1], "")
		}
	} else {
		val = whitespaceRe.ReplaceAllString(val, "")
	}

	val = repairImplicitDecimals(val)

	return strings.ToLower(val)
}

// repairImplicitDecimals rewrites signed 3-digit runs with no decimal point by
// inserting a point before the last two digits: "+150" → "+1.50". Runs with a
// different digit count, or already followed by a digit or point, are left
// alone. Implemented as a scanner because the boundary check needs a lookahead
// that RE2 cannot express without consuming the next token's sign.
func repairImplicitDecimals(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	for i := 0; i < len(s); {
		c := s[i]
		if c != '+' && c != '-' {
			b.WriteByte(c)
			i++
			continue
		}

		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		digits := j - i - 1

		if digits == 3 && (j == len(s) || (s[j] != '.' && !isDigit(s[j]))) {
			b.WriteByte(c)
			b.WriteByte(s[i+1])
			b.WriteByte('.')
			b.WriteString(s[i+2 : j])
		} else {
			b.WriteString(s[i:j])
		}
		i = j
	}

	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// NormalizeBlockAdds converts a Block addition value to the integer form the
// catalog stores: signs are dropped, commas become points, and the point is
// then removed entirely. "+1.50" → "150", "1,50" → "150", "225" → "225".
func NormalizeBlockAdds(input string) string {
	val := signRe.ReplaceAllString(strings.TrimSpace(input), "")
	val = strings.ReplaceAll(val, ",", ".")
	return strings.ReplaceAll(val, ".", "")
}
