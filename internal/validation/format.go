package validation

import "strings"

// FormatCardNumber groups the digits of v in fours, e.g. "4111 1111 1111 1111".
// Input holding anything but digits and spaces, or more than 16 digits, is
// returned unchanged so that validation sees what was sent.
func FormatCardNumber(v string) string {
	digits := strings.ReplaceAll(v, " ", "")
	if len(digits) > 16 || nonDigits.MatchString(digits) {
		return v
	}

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatExpiry inserts the slash after the month, e.g. "1226" -> "12/26".
// Anything other than one to four bare digits is returned unchanged.
func FormatExpiry(v string) string {
	if !bareExpiry.MatchString(v) {
		return v
	}
	if len(v) >= 2 {
		return v[:2] + "/" + v[2:]
	}
	return v
}

// MaskCard keeps only the last four digits of a card number
func MaskCard(v string) string {
	digits := nonDigits.ReplaceAllString(v, "")
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}
	return "**** **** **** " + digits[len(digits)-4:]
}

// LastFour returns the final four digits of a card number
func LastFour(v string) string {
	digits := nonDigits.ReplaceAllString(v, "")
	if len(digits) < 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
