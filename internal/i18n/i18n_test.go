package i18n

import "testing"

func TestT_Fallbacks(t *testing.T) {
	tests := []struct {
		name string
		lang string
		key  string
		want string
	}{
		{"known lang and key", "ru", "yes", "Да"},
		{"unknown lang falls back to english", "de", "yes", "Yes"},
		{"empty lang falls back to english", "", "no", "No"},
		{"unknown key echoes key", "en", "no_such_key", "no_such_key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := T(tt.lang, tt.key); got != tt.want {
				t.Errorf("T(%q, %q) = %q, want %q", tt.lang, tt.key, got, tt.want)
			}
		})
	}
}

func TestTf_Placeholders(t *testing.T) {
	got := Tf("en", "currency_set", "currency", "EUR")
	want := "Currency set to: EUR"
	if got != want {
		t.Errorf("Tf() = %q, want %q", got, want)
	}

	// Multi-placeholder substitution.
	got = Tf("en", "expense_confirm",
		"amount", "5", "currency", "USD", "description", "coffee", "category", "Food")
	want = "You spent 5 USD on coffee (Category: Food). Confirm to save?"
	if got != want {
		t.Errorf("Tf() = %q, want %q", got, want)
	}
}

func TestMatches_AnyLanguage(t *testing.T) {
	// A Russian back label must match even for a user configured in English.
	if !Matches("⬅️ Назад", "back") {
		t.Error("expected Russian back label to match")
	}
	if !Matches("⬅️ Back", "back") {
		t.Error("expected English back label to match")
	}
	if Matches("back", "back") {
		t.Error("bare word must not match the labeled button")
	}
}

func TestAllLanguagesCoverKeys(t *testing.T) {
	// Every key present in English must exist in the other languages, so a
	// language switch can never produce an untranslated screen.
	for key := range translations["en"] {
		for _, lang := range []string{"uz", "ru"} {
			if _, ok := translations[lang][key]; !ok {
				t.Errorf("language %q missing key %q", lang, key)
			}
		}
	}
}

func TestDefaultTimezone(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{"uz", "Asia/Tashkent"},
		{"ru", "Europe/Moscow"},
		{"en", "UTC"},
		{"xx", "UTC"},
	}
	for _, tt := range tests {
		if got := DefaultTimezone(tt.lang); got != tt.want {
			t.Errorf("DefaultTimezone(%q) = %q, want %q", tt.lang, got, tt.want)
		}
	}
}
