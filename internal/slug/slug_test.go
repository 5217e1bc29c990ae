package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain uppercase", "ODARA", "odara"},
		{"accents stripped", "BOGOTÁ", "bogota"},
		{"cedilla and tilde", "NÃO EXISTE AMOR EM SP", "nao-existe-amor-em-sp"},
		{"punctuation run collapses", "ALMA SEBOSA / FLUTUA", "alma-sebosa-flutua"},
		{"comma", "OBA, LÁ VEM ELA", "oba-la-vem-ela"},
		{"digits kept", "DESCOBRIDOR DOS 7 MARES", "descobridor-dos-7-mares"},
		{"leading and trailing trimmed", "  --Me Deixa!! ", "me-deixa"},
		{"empty falls back", "", Fallback},
		{"all punctuation falls back", "?!... ---", Fallback},
		{"already a slug", "funk-ate-o-caroco", "funk-ate-o-caroco"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Make(tc.in))
		})
	}
}

func TestMakeIdempotent(t *testing.T) {
	inputs := []string{
		"ODARA", "BOGOTÁ", "ALMA SEBOSA / FLUTUA", "", "?!", "já--slug",
		"QUANDO A MARÉ ENCHER", "track", "a", "1234", "ênçøding",
	}
	for _, in := range inputs {
		once := Make(in)
		assert.Equal(t, once, Make(once), "Make must be idempotent for %q", in)
	}
}

func TestMakeCombiningMarks(t *testing.T) {
	composed := "É"        // U+00C9
	decomposed := "É" // E + combining acute
	assert.Equal(t, Make(composed), Make(decomposed))
	assert.Equal(t, "e", Make(decomposed))
}

func TestMakeNeverPanicsOnGarbage(t *testing.T) {
	inputs := []string{"\xff\xfe", "\x00", "🎸🎶", "   ", "�"}
	for _, in := range inputs {
		assert.NotEmpty(t, Make(in))
	}
}
