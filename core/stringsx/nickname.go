package stringsx

import "unicode"

// Nickname turns a raw method name into a human-readable caption by inserting
// a single space at every lower-to-upper and letter-to-digit (or digit-to-letter)
// boundary. Runs of capitals stay joined: "SayHello" becomes "Say Hello",
// "Sum2Numbers" becomes "Sum 2 Numbers", "HTTPGet" is left unchanged.
func Nickname(s string) string {
	if s == "" {
		return ""
	}

	runes := []rune(s)
	out := make([]rune, 0, len(runes)+4)

	for i, r := range runes {
		if i > 0 && boundary(runes[i-1], r) {
			out = append(out, ' ')
		}
		out = append(out, r)
	}

	return string(out)
}

func boundary(prev, cur rune) bool {
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(cur):
		return true
	case unicode.IsLetter(prev) && unicode.IsDigit(cur):
		return true
	case unicode.IsDigit(prev) && unicode.IsLetter(cur):
		return true
	}

	return false
}
