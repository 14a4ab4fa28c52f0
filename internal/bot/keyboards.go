package bot

import (
	"github.com/botirbakhtiyarov/smartexpensebot/internal/i18n"
)

func mainMenuKeyboard(lang string) *Keyboard {
	return &Keyboard{Rows: [][]Button{
		{{Label: i18n.T(lang, "expenses")}, {Label: i18n.T(lang, "income")}},
		{{Label: i18n.T(lang, "reminders")}, {Label: i18n.T(lang, "reports")}},
	}}
}

func backKeyboard(lang string) *Keyboard {
	return &Keyboard{Rows: [][]Button{
		{{Label: i18n.T(lang, "back")}},
	}}
}

func confirmKeyboard(lang string) *Keyboard {
	return &Keyboard{Inline: true, Rows: [][]Button{
		{
			{Label: i18n.T(lang, "yes"), Data: "confirm_yes"},
			{Label: i18n.T(lang, "no"), Data: "confirm_no"},
		},
	}}
}

func languageKeyboard() *Keyboard {
	return &Keyboard{Inline: true, Rows: [][]Button{
		{{Label: i18n.LanguageName("uz"), Data: "lang_uz"}},
		{{Label: i18n.LanguageName("ru"), Data: "lang_ru"}},
		{{Label: i18n.LanguageName("en"), Data: "lang_en"}},
	}}
}

func locationKeyboard(lang string) *Keyboard {
	return &Keyboard{Rows: [][]Button{
		{{Label: i18n.T(lang, "share_location"), RequestLocation: true}},
		{{Label: i18n.T(lang, "enter_country")}},
		{{Label: i18n.T(lang, "skip")}},
	}}
}

var currencyChoices = []string{"UZS", "USD", "EUR", "RUB"}

func currencyKeyboard() *Keyboard {
	row := make([]Button, 0, len(currencyChoices))
	for _, c := range currencyChoices {
		row = append(row, Button{Label: c, Data: "currency_" + c})
	}
	return &Keyboard{Inline: true, Rows: [][]Button{row}}
}

func reportKeyboard(lang string) *Keyboard {
	return &Keyboard{Inline: true, Rows: [][]Button{
		{
			{Label: i18n.T(lang, "report_today"), Data: "report_today"},
			{Label: i18n.T(lang, "report_week"), Data: "report_week"},
		},
		{
			{Label: i18n.T(lang, "report_month"), Data: "report_month"},
			{Label: i18n.T(lang, "report_custom"), Data: "report_custom"},
		},
	}}
}
