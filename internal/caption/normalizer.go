package caption

import (
	"strings"
	"unicode"

	"github.com/abadojack/whatlanggo"
	"golang.org/x/text/language"
)

// Normalize converts SRT subtitle content into a single flat text stream
// suitable for feeding to a language model. Cue indexes and time-range lines
// are dropped; the text lines of each cue are joined with spaces, and cues
// are joined with spaces in their original order.
//
// Malformed input never fails: anything that does not look like the start of
// a cue is skipped, and an empty input yields an empty string.
func Normalize(srt string) string {
	lines := strings.Split(srt, "\n")
	var cues []string

	i := 0
	for i < len(lines) {
		if !isCueIndex(lines[i]) {
			i++
			continue
		}
		// cue index line, then the time-range line
		i++
		if i < len(lines) {
			i++
		}
		// text lines run until a blank line or end of input
		var text []string
		for i < len(lines) && strings.TrimSpace(lines[i]) != "" {
			text = append(text, lines[i])
			i++
		}
		if len(text) > 0 {
			cues = append(cues, strings.Join(text, " "))
		}
	}

	return strings.Join(cues, " ")
}

// isCueIndex reports whether line is a bare cue number
func isCueIndex(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	for _, r := range line {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// DetectLanguage guesses the language of normalized transcript text.
// Empty input yields language.Und.
func DetectLanguage(text string) language.Tag {
	if strings.TrimSpace(text) == "" {
		return language.Und
	}

	iso := whatlanggo.DetectLang(text).Iso6391()
	if iso == "" {
		return language.Und
	}

	return language.All.Make(iso)
}
