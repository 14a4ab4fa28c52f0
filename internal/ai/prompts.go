package ai

import (
	"fmt"
	"time"

	"github.com/botirbakhtiyarov/smartexpensebot/internal/domain"
)

const expenseSystem = `You extract structured expense data from a user message.
Respond with a single JSON object and nothing else. No explanations, no markdown.
Schema:
{"amount": <number>, "currency": "<ISO 4217 code>", "category": "<one of: Food, Transport, Entertainment, Education, Health, Electronics, Shopping, Bills, Other>", "description": "<short description>", "advice": "<one short money-saving tip in the user's language>"}
If the amount is not stated, use 0. If the currency is not stated, use an empty string.`

const expensesMultiSystem = `You extract every expense mentioned in a user message.
Respond with a single JSON array and nothing else. No explanations, no markdown.
Each element follows this schema:
{"amount": <number>, "currency": "<ISO 4217 code>", "category": "<one of: Food, Transport, Entertainment, Education, Health, Electronics, Shopping, Bills, Other>", "description": "<short description>", "advice": "<one short money-saving tip in the user's language>"}
If the message contains exactly one expense, return an array with one element.
If an amount is not stated for an item, use 0 for that item.`

const incomeSystem = `You extract structured income data from a user message.
Respond with a single JSON object and nothing else. No explanations, no markdown.
Schema:
{"amount": <number>, "currency": "<ISO 4217 code>", "description": "<short description>", "recurrence": "<monthly or daily>"}
If the recurrence is not stated, use "monthly". If the amount is not stated, use 0.`

const countrySystem = `You map a country or city name to its primary IANA timezone identifier.
Respond with the identifier only, for example Asia/Tashkent or Europe/Berlin.
If you cannot determine the timezone, respond with the single word None.`

const reportSystem = `You are a personal finance assistant. Answer the user's question
about their own spending using only the data provided. Be brief and concrete.
Answer in the user's language.`

// reminderSystem anchors the model in the user's local clock so that phrases
// like "in 20 minutes" or "tomorrow at 9" resolve against the right moment.
func reminderSystem(tzName string, nowLocal time.Time) string {
	return fmt.Sprintf(`You extract the moment a reminder should fire from a user message.
The user's timezone is %s and their current local time is %s.
Respond with the target local time in the exact format YYYY-MM-DD HH:MM and nothing else.
If the message contains no time expression, respond with the single word None.`,
		tzName, nowLocal.Format("2006-01-02 15:04"))
}

func expensePrompt(lang string, text string) string {
	switch lang {
	case domain.LangUzbek:
		return fmt.Sprintf("Foydalanuvchi xarajat haqida yozdi. Xabardan summa, valyuta, kategoriya va qisqa tavsifni ajratib oling. Maslahatni o'zbek tilida yozing.\n\nXabar: %s", text)
	case domain.LangRussian:
		return fmt.Sprintf("Пользователь написал о расходе. Извлеките из сообщения сумму, валюту, категорию и краткое описание. Совет напишите на русском языке.\n\nСообщение: %s", text)
	default:
		return fmt.Sprintf("The user wrote about an expense. Extract the amount, currency, category and a short description. Write the advice in English.\n\nMessage: %s", text)
	}
}

func expensesMultiPrompt(lang string, text, defaultCurrency string) string {
	switch lang {
	case domain.LangUzbek:
		return fmt.Sprintf("Foydalanuvchi bir yoki bir nechta xarajat haqida yozdi. Har bir xarajatni alohida element sifatida ajratib oling. Valyuta aytilmagan bo'lsa %s dan foydalaning. Maslahatlarni o'zbek tilida yozing.\n\nXabar: %s", defaultCurrency, text)
	case domain.LangRussian:
		return fmt.Sprintf("Пользователь написал об одном или нескольких расходах. Извлеките каждый расход отдельным элементом. Если валюта не указана, используйте %s. Советы напишите на русском языке.\n\nСообщение: %s", defaultCurrency, text)
	default:
		return fmt.Sprintf("The user wrote about one or more expenses. Extract each expense as a separate element. If a currency is not stated, use %s. Write the advice in English.\n\nMessage: %s", defaultCurrency, text)
	}
}

func incomePrompt(lang string, text, defaultCurrency string) string {
	switch lang {
	case domain.LangUzbek:
		return fmt.Sprintf("Foydalanuvchi daromad haqida yozdi. Summa, valyuta, tavsif va davriylikni (oylik yoki kunlik) ajratib oling. Valyuta aytilmagan bo'lsa %s dan foydalaning.\n\nXabar: %s", defaultCurrency, text)
	case domain.LangRussian:
		return fmt.Sprintf("Пользователь написал о доходе. Извлеките сумму, валюту, описание и периодичность (ежемесячно или ежедневно). Если валюта не указана, используйте %s.\n\nСообщение: %s", defaultCurrency, text)
	default:
		return fmt.Sprintf("The user wrote about income. Extract the amount, currency, description and recurrence (monthly or daily). If a currency is not stated, use %s.\n\nMessage: %s", defaultCurrency, text)
	}
}

func reminderPrompt(lang string, text string) string {
	switch lang {
	case domain.LangUzbek:
		return fmt.Sprintf("Eslatma xabari: %s", text)
	case domain.LangRussian:
		return fmt.Sprintf("Сообщение с напоминанием: %s", text)
	default:
		return fmt.Sprintf("Reminder message: %s", text)
	}
}

func countryPrompt(country string) string {
	return fmt.Sprintf("Country or city: %s", country)
}

func reportPrompt(lang string, question, digest string) string {
	switch lang {
	case domain.LangUzbek:
		return fmt.Sprintf("Foydalanuvchi savoli: %s\n\nFoydalanuvchi ma'lumotlari:\n%s", question, digest)
	case domain.LangRussian:
		return fmt.Sprintf("Вопрос пользователя: %s\n\nДанные пользователя:\n%s", question, digest)
	default:
		return fmt.Sprintf("User question: %s\n\nUser data:\n%s", question, digest)
	}
}
