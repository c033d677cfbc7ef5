package table

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ellipsis marks text cut off by a hard truncation.
const ellipsis = ".."

// Truncate fits v into width characters the way a cell of that width
// would, and returns the lines joined by newlines. NoLimit returns the
// untruncated form.
func Truncate(v any, width int) (string, error) {
	c := NewCell(v)
	if err := c.SetMaxWidth(width); err != nil {
		return "", err
	}
	lines, err := c.Lines()
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// truncateValue applies the numeric shorthand and text wrapping rules to a
// non-table value. Nested tables are laid out by the caller instead.
func truncateValue(v Value, width int) string {
	text := v.String()
	if width == NoLimit {
		return text
	}
	natural := textWidth(text)

	switch v.kind {
	case KindFloat:
		text = truncateFloat(v.f, width)
	case KindInt:
		text = truncateInteger(text, float64(v.i), width)
	}

	if natural > width || textWidth(text) > width {
		text = wrapText(text, width)
	}
	return text
}

// truncateFloat keeps as many decimals as fit next to the integer part
// and a decimal point. Without room for a single decimal the fraction is
// dropped and the integer shorthand applies.
func truncateFloat(f float64, width int) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return formatFloat(f)
	}
	r := width - len(roundedDigits(f)) - 2
	if r > 0 {
		rounded, err := strconv.ParseFloat(strconv.FormatFloat(f, 'f', r, 64), 64)
		if err != nil {
			return formatFloat(f)
		}
		return formatFloat(rounded)
	}
	whole := math.Trunc(f)
	return truncateInteger(integerDigits(whole), whole, width)
}

// truncateInteger shortens digits to "<n>e<counter>", where counter is the
// number of divisions by ten needed for n, the letter and the counter to
// fit in width. The counter is a division count, not a decimal exponent.
// When even a one-digit n cannot fit, digits are returned unchanged and
// the text path cuts them.
func truncateInteger(digits string, f float64, width int) string {
	if len(digits) <= width {
		return digits
	}
	counter := 0
	current := digits
	for len(current) > width-len(strconv.Itoa(counter))-1 {
		if width-len(strconv.Itoa(counter+1))-1 < 1 {
			return digits
		}
		f /= 10
		counter++
		current = roundedDigits(f)
	}
	return integerDigits(math.Trunc(f)) + "e" + strconv.Itoa(counter)
}

// roundedDigits is the text of f rounded half to even to an integer.
func roundedDigits(f float64) string {
	return integerDigits(math.RoundToEven(f))
}

// integerDigits writes an integral float without exponent or fraction.
func integerDigits(f float64) string {
	if math.Abs(f) < 1<<53 {
		return strconv.FormatInt(int64(f), 10)
	}
	i, _ := big.NewFloat(f).Int(nil)
	return i.String()
}

// wrapText breaks every line wider than width at spaces. A line holding a
// word that cannot fit is cut to width-2 characters followed by "..".
func wrapText(text string, width int) string {
	in := strings.Split(text, "\n")
	out := make([]string, 0, len(in))
	for _, line := range in {
		if utf8.RuneCountInString(line) <= width {
			out = append(out, line)
			continue
		}
		words := strings.Split(line, " ")
		if longestWord(words) > width {
			out = append(out, string([]rune(line)[:width-len(ellipsis)])+ellipsis)
			continue
		}
		out = append(out, packWords(words, width)...)
	}
	return strings.Join(out, "\n")
}

// packWords fills lines greedily. Every word takes its own width plus the
// space after it, which keeps a gap before the column separator. The
// trailing space is dropped from the emitted line, and an empty line never
// breaks.
func packWords(words []string, width int) []string {
	var lines, current []string
	length := 0
	for _, w := range words {
		n := utf8.RuneCountInString(w)
		if len(current) > 0 && length+n+1 > width {
			lines = append(lines, strings.Join(current, " "))
			current, length = nil, 0
		}
		current = append(current, w)
		length += n + 1
	}
	return append(lines, strings.Join(current, " "))
}

func longestWord(words []string) int {
	longest := 0
	for _, w := range words {
		if n := utf8.RuneCountInString(w); n > longest {
			longest = n
		}
	}
	return longest
}

// textWidth is the character count of the longest line in s.
func textWidth(s string) int {
	widest := 0
	for _, line := range strings.Split(s, "\n") {
		if n := utf8.RuneCountInString(line); n > widest {
			widest = n
		}
	}
	return widest
}
