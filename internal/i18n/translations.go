package i18n

var translations = map[string]map[string]string{
	"uz": {
		"welcome":                        "Assalomu alaykum! Men SmartExpenseBot - sizning shaxsiy yordamchingizman. Tilni tanlang:",
		"language_set":                   "Til o'zgartirildi: O'zbek tili",
		"main_menu":                      "Asosiy menyu",
		"expenses":                       "💸 Xarajatlar",
		"income":                         "💰 Daromad",
		"reports":                        "📊 Hisobotlar",
		"reminders":                      "⏰ Eslatmalar",
		"back":                           "⬅️ Orqaga",
		"yes":                            "Ha",
		"no":                             "Yo'q",
		"skip":                           "O'tkazib yuborish",
		"processing":                     "Qayta ishlanmoqda...",
		"error":                          "Xatolik yuz berdi. Iltimos, qayta urinib ko'ring.",
		"cancelled":                      "Bekor qilindi.",
		"fallback_advice":                "Xarajatlaringizni muntazam kuzatib boring.",
		"expense_prompt":                 "Xarajatni matn yoki ovozli xabar orqali yuboring:",
		"expense_confirm":                "Siz {amount} {currency} {description} uchun sarfladingiz (Kategoriya: {category}). Saqlashni tasdiqlaysizmi?",
		"expense_confirmed":              "Xarajat saqlandi! 💰",
		"expenses_saved":                 "Saqlandi: {count} ta xarajat. 💰",
		"multiple_expenses_found":        "Topildi {count} ta xarajat:",
		"save_all":                       "Barchasini saqlash uchun tasdiqlang:",
		"income_prompt":                  "Daromadni matn yoki ovozli xabar orqali yuboring:",
		"income_confirm":                 "Daromad: {amount} {currency} ({income_type}) - {description}. Saqlashni tasdiqlaysizmi?",
		"income_confirmed":               "Daromad saqlandi! 💰",
		"income_type_monthly":            "Oylik",
		"income_type_daily":              "Kunlik",
		"report_prompt":                  "Hisobot so'rovingizni yuboring (masalan: 'Bu oygi xarajatlarimni ko'rsating'):",
		"report_today":                   "📅 Bugun",
		"report_week":                    "📅 Bu hafta",
		"report_month":                   "📅 Bu oy",
		"report_custom":                  "📅 Maxsus sana",
		"report_custom_soon":             "Maxsus sana tanlash tez orada qo'shiladi. Hozircha Bugun/Hafta/Oy dan foydalaning.",
		"report_total":                   "Jami: {amount} {currency} ({count} ta yozuv)",
		"report_empty":                   "Hozircha xarajatlar yo'q.",
		"reminder_prompt":                "Eslatmani matn yoki ovozli xabar orqali yuboring:",
		"reminder_added":                 "Eslatma qo'shildi! ⏰",
		"reminder_past":                  "Eslatma vaqti kelajakda bo'lishi kerak.",
		"reminder_warning":               "⏰ Eslatma (10 daqiqa qoldi):\n{message}",
		"reminder_triggered":             "🔔 Eslatma:\n{message}",
		"daily_expense_reminder":         "💰 Kunlik eslatma: Bugungi xarajatlaringizni kiritishni unutmang! Xarajatlaringizni yozib olish sizga moliyaviy holatingizni nazorat qilishda yordam beradi.",
		"voice_unavailable":              "Ovozli xabarni matnga aylantirib bo'lmadi. Iltimos, matn yuboring.",
		"select_currency":                "Valyutani tanlang:",
		"currency_set":                   "Valyuta o'rnatildi: {currency}",
		"request_location_for_timezone":  "Vaqt mintaqasini aniqlash uchun joylashuvingizni yoki mamlakat nomini yuboring:",
		"share_location":                 "📍 Joylashuvni yuborish",
		"enter_country":                  "🌍 Mamlakat nomini yozing",
		"timezone_updated":               "Vaqt mintaqasi yangilandi: {timezone}",
		"timezone_detection_failed":      "Vaqt mintaqasini aniqlashda xatolik yuz berdi.",
	},
	"ru": {
		"welcome":                        "Здравствуйте! Я SmartExpenseBot - ваш личный помощник. Выберите язык:",
		"language_set":                   "Язык изменен: Русский",
		"main_menu":                      "Главное меню",
		"expenses":                       "💸 Расходы",
		"income":                         "💰 Доход",
		"reports":                        "📊 Отчеты",
		"reminders":                      "⏰ Напоминания",
		"back":                           "⬅️ Назад",
		"yes":                            "Да",
		"no":                             "Нет",
		"skip":                           "Пропустить",
		"processing":                     "Обработка...",
		"error":                          "Произошла ошибка. Пожалуйста, попробуйте еще раз.",
		"cancelled":                      "Отменено.",
		"fallback_advice":                "Регулярно отслеживайте свои расходы.",
		"expense_prompt":                 "Отправьте расход текстом или голосовым сообщением:",
		"expense_confirm":                "Вы потратили {amount} {currency} на {description} (Категория: {category}). Подтвердить сохранение?",
		"expense_confirmed":              "Расход сохранен! 💰",
		"expenses_saved":                 "Сохранено расходов: {count}. 💰",
		"multiple_expenses_found":        "Найдено {count} расходов:",
		"save_all":                       "Подтвердите, чтобы сохранить все:",
		"income_prompt":                  "Отправьте доход текстом или голосовым сообщением:",
		"income_confirm":                 "Доход: {amount} {currency} ({income_type}) - {description}. Подтвердить сохранение?",
		"income_confirmed":               "Доход сохранен! 💰",
		"income_type_monthly":            "Ежемесячный",
		"income_type_daily":              "Ежедневный",
		"report_prompt":                  "Отправьте запрос отчета (например: 'Покажи мои расходы за этот месяц'):",
		"report_today":                   "📅 Сегодня",
		"report_week":                    "📅 Эта неделя",
		"report_month":                   "📅 Этот месяц",
		"report_custom":                  "📅 Выбрать дату",
		"report_custom_soon":             "Выбор произвольной даты скоро появится. Пока используйте Сегодня/Неделя/Месяц.",
		"report_total":                   "Итого: {amount} {currency} (записей: {count})",
		"report_empty":                   "Расходов пока нет.",
		"reminder_prompt":                "Отправьте напоминание текстом или голосовым сообщением:",
		"reminder_added":                 "Напоминание добавлено! ⏰",
		"reminder_past":                  "Время напоминания должно быть в будущем.",
		"reminder_warning":               "⏰ Напоминание (осталось 10 минут):\n{message}",
		"reminder_triggered":             "🔔 Напоминание:\n{message}",
		"daily_expense_reminder":         "💰 Ежедневное напоминание: Не забудьте внести сегодняшние расходы! Запись ваших расходов поможет вам контролировать свое финансовое положение.",
		"voice_unavailable":              "Не удалось распознать голосовое сообщение. Пожалуйста, отправьте текст.",
		"select_currency":                "Выберите валюту:",
		"currency_set":                   "Валюта установлена: {currency}",
		"request_location_for_timezone":  "Поделитесь местоположением или отправьте название страны для определения часового пояса:",
		"share_location":                 "📍 Поделиться местоположением",
		"enter_country":                  "🌍 Введите название страны",
		"timezone_updated":               "Часовой пояс обновлен: {timezone}",
		"timezone_detection_failed":      "Не удалось определить часовой пояс.",
	},
	"en": {
		"welcome":                        "Hello! I'm SmartExpenseBot - your personal assistant. Choose a language:",
		"language_set":                   "Language changed: English",
		"main_menu":                      "Main Menu",
		"expenses":                       "💸 Expenses",
		"income":                         "💰 Income",
		"reports":                        "📊 Reports",
		"reminders":                      "⏰ Reminders",
		"back":                           "⬅️ Back",
		"yes":                            "Yes",
		"no":                             "No",
		"skip":                           "Skip",
		"processing":                     "Processing...",
		"error":                          "An error occurred. Please try again.",
		"cancelled":                      "Cancelled.",
		"fallback_advice":                "Keep tracking your spending regularly.",
		"expense_prompt":                 "Send an expense via text or voice message:",
		"expense_confirm":                "You spent {amount} {currency} on {description} (Category: {category}). Confirm to save?",
		"expense_confirmed":              "Expense saved! 💰",
		"expenses_saved":                 "Saved {count} expenses. 💰",
		"multiple_expenses_found":        "Found {count} expenses:",
		"save_all":                       "Confirm to save all:",
		"income_prompt":                  "Send an income via text or voice message:",
		"income_confirm":                 "Income: {amount} {currency} ({income_type}) - {description}. Confirm to save?",
		"income_confirmed":               "Income saved! 💰",
		"income_type_monthly":            "Monthly",
		"income_type_daily":              "Daily",
		"report_prompt":                  "Send your report query (e.g., 'Show my expenses this month'):",
		"report_today":                   "📅 Today",
		"report_week":                    "📅 This Week",
		"report_month":                   "📅 This Month",
		"report_custom":                  "📅 Custom Date",
		"report_custom_soon":             "Custom date selection coming soon. Please use Today/Week/Month for now.",
		"report_total":                   "Total: {amount} {currency} ({count} records)",
		"report_empty":                   "No expenses recorded yet.",
		"reminder_prompt":                "Send a reminder via text or voice message:",
		"reminder_added":                 "Reminder added! ⏰",
		"reminder_past":                  "Reminder time must be in the future.",
		"reminder_warning":               "⏰ Reminder (10 minutes left):\n{message}",
		"reminder_triggered":             "🔔 Reminder:\n{message}",
		"daily_expense_reminder":         "💰 Daily Reminder: Don't forget to input your expenses today! Recording your expenses helps you control your financial situation.",
		"voice_unavailable":              "Could not transcribe the voice message. Please send text instead.",
		"select_currency":                "Select your currency:",
		"currency_set":                   "Currency set to: {currency}",
		"request_location_for_timezone":  "Please share your location or send your country name to detect your timezone:",
		"share_location":                 "📍 Share Location",
		"enter_country":                  "🌍 Enter Country Name",
		"timezone_updated":               "Timezone updated: {timezone}",
		"timezone_detection_failed":      "Failed to detect timezone.",
	},
}
