package speech

import (
	"testing"

	"golang.org/x/text/language"
)

func TestVoicePickerTag(t *testing.T) {
	picker := NewVoicePicker()

	tests := []struct {
		text string
		want string
	}{
		{"a dog playing fetch in the park on a sunny afternoon", "en"},
		{"un perro jugando en el parque bajo el sol de la tarde", "es"},
		{"un chien qui joue dans le parc par un bel après-midi", "fr"},
		{"ein Hund spielt an einem sonnigen Nachmittag im Park", "de"},
		{"公園で遊んでいる犬の写真です", "ja"},
	}

	for _, tt := range tests {
		if got := isoCode(picker.Tag(tt.text)); got != tt.want {
			t.Errorf("Tag(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestVoicePickerDefaultsToEnglish(t *testing.T) {
	picker := NewVoicePicker()

	if got := picker.Tag(""); got != language.English {
		t.Errorf("Tag(\"\") = %v, want %v", got, language.English)
	}
}

func TestMacVoicesCoverPickerLanguages(t *testing.T) {
	picker := NewVoicePicker()

	for _, text := range []string{
		"the cat sat on the mat in the warm morning light",
		"el gato descansa tranquilamente sobre la alfombra roja",
	} {
		code := isoCode(picker.Tag(text))
		if macVoices[code] == "" {
			t.Errorf("no macOS voice for detected language %q", code)
		}
	}
}

func TestLanguageName(t *testing.T) {
	if got := LanguageName(language.French); got != "French" {
		t.Errorf("LanguageName(fr) = %q, want %q", got, "French")
	}
}
