// Package password computes advisory strength feedback for a password:
// a zxcvbn score with its label and meter color, plus four independent rule
// checks. Nothing here blocks a submit.
package password

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/nbutton23/zxcvbn-go"
)

const specialChars = "!%&@#$^*?_~,"

var (
	mixedCaseRe = regexp.MustCompile(`([a-z].*[A-Z])|([A-Z].*[a-z])`)
	digitRe     = regexp.MustCompile(`[0-9]`)
)

type Color string

const (
	ColorRed         Color = "red"
	ColorYellow      Color = "yellow"
	ColorLightYellow Color = "light-yellow"
	ColorLightGreen  Color = "light-green"
	ColorGreen       Color = "green"
	ColorGray        Color = "gray"
)

// Rules are the guidance checks shown under the password field.
type Rules struct {
	MixedCase bool
	Digit     bool
	Special   bool
	MinLength bool
}

type Strength struct {
	Score int
	Label string
	Color Color
	Rules Rules
}

// MeterPercent is the width of the strength bar.
func (s Strength) MeterPercent() int {
	return (s.Score + 1) * 20
}

// scoreFn is swapped in tests that need a fixed score.
var scoreFn = func(pw string) int {
	return zxcvbn.PasswordStrength(pw, nil).Score
}

// Evaluate scores pw on its own; no other form fields feed the score.
func Evaluate(pw string) Strength {
	score := scoreFn(pw)
	return Strength{
		Score: score,
		Label: Label(score),
		Color: ColorFor(score),
		Rules: Check(pw),
	}
}

// Label maps a 0..4 score to its display name; other values have none.
func Label(score int) string {
	switch score {
	case 0:
		return "Weak"
	case 1:
		return "Fair"
	case 2:
		return "Good"
	case 3:
		return "Strong"
	case 4:
		return "Very Strong"
	default:
		return ""
	}
}

func ColorFor(score int) Color {
	switch score {
	case 0:
		return ColorRed
	case 1:
		return ColorYellow
	case 2:
		return ColorLightYellow
	case 3:
		return ColorLightGreen
	case 4:
		return ColorGreen
	default:
		return ColorGray
	}
}

// Check evaluates the four rules on pw alone. Length counts characters,
// not bytes.
func Check(pw string) Rules {
	return Rules{
		MixedCase: mixedCaseRe.MatchString(pw),
		Digit:     digitRe.MatchString(pw),
		Special:   strings.ContainsAny(pw, specialChars),
		MinLength: utf8.RuneCountInString(pw) > 7,
	}
}
