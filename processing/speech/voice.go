package speech

import (
	"strings"

	"github.com/pemistahl/lingua-go"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// macVoices maps ISO 639-1 codes to the default voice of the macOS `say`
// command for that language.
var macVoices = map[string]string{
	"en": "Samantha",
	"es": "Mónica",
	"fr": "Thomas",
	"de": "Anna",
	"it": "Alice",
	"pt": "Luciana",
	"nl": "Xander",
	"ja": "Kyoko",
	"zh": "Tingting",
	"ko": "Yuna",
	"ru": "Milena",
}

// VoicePicker detects the language of caption text so an engine can pick a
// matching voice instead of reading foreign text with an English voice.
type VoicePicker struct {
	detector lingua.LanguageDetector
}

func NewVoicePicker() *VoicePicker {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(
			lingua.English,
			lingua.Spanish,
			lingua.French,
			lingua.German,
			lingua.Italian,
			lingua.Portuguese,
			lingua.Dutch,
			lingua.Japanese,
			lingua.Chinese,
			lingua.Korean,
			lingua.Russian,
		).
		Build()

	return &VoicePicker{detector: detector}
}

// Tag returns the BCP 47 tag of the detected language, defaulting to
// English when detection is inconclusive.
func (p *VoicePicker) Tag(text string) language.Tag {
	detected, ok := p.detector.DetectLanguageOf(text)
	if !ok {
		return language.English
	}
	return language.Make(strings.ToLower(detected.IsoCode639_1().String()))
}

// LanguageName returns the English display name of tag, for status text.
func LanguageName(tag language.Tag) string {
	return display.English.Languages().Name(tag)
}

// isoCode returns the two-letter code of tag.
func isoCode(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}
