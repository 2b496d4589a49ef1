package translate

import (
	"context"
	"testing"
)

func TestTranslate_InputValidation(t *testing.T) {
	svc := &TranslateService{}

	if _, err := svc.Translate(context.Background(), "   ", "ar", "en"); err == nil {
		t.Fatal("expected empty text to be rejected")
	}
	if _, err := svc.Translate(context.Background(), "مرحبا", "ar", "en"); err == nil {
		t.Fatal("expected missing client error")
	}
}

func TestLanguageName(t *testing.T) {
	cases := map[string]string{
		"en":      "English",
		"English": "English",
		"ar":      "Arabic",
		"":        "Arabic",
		"fr":      "Arabic",
	}
	for in, want := range cases {
		if got := languageName(in); got != want {
			t.Errorf("languageName(%q)=%q want %q", in, got, want)
		}
	}
}
