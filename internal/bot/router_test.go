package bot

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/botirbakhtiyarov/smartexpensebot/internal/domain"
	"github.com/botirbakhtiyarov/smartexpensebot/internal/i18n"
	"github.com/botirbakhtiyarov/smartexpensebot/internal/session"
	"github.com/botirbakhtiyarov/smartexpensebot/internal/timeparse"
)

type fakeStore struct {
	users     map[int64]*domain.User
	expenses  []domain.Expense
	incomes   []domain.Income
	reminders []domain.Reminder

	failExpenseAfter int // fail AddExpense once this many have been saved, 0 = never
	nextID           int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: make(map[int64]*domain.User)}
}

func (f *fakeStore) GetOrCreateUser(_ context.Context, userID, chatID int64, name string) (*domain.User, bool, error) {
	if u, ok := f.users[userID]; ok {
		copied := *u
		return &copied, false, nil
	}
	u := &domain.User{ID: userID, ChatID: chatID, Name: name, Timezone: domain.DefaultTimezone}
	f.users[userID] = u
	copied := *u
	return &copied, true, nil
}

func (f *fakeStore) GetUser(_ context.Context, userID int64) (*domain.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (f *fakeStore) UpdateUserLanguage(_ context.Context, userID int64, language string) error {
	f.users[userID].Language = language
	return nil
}

func (f *fakeStore) UpdateUserTimezone(_ context.Context, userID int64, timezone string) error {
	f.users[userID].Timezone = timezone
	return nil
}

func (f *fakeStore) UpdateUserCurrency(_ context.Context, userID int64, currency string) error {
	f.users[userID].Currency = currency
	return nil
}

func (f *fakeStore) AddExpense(_ context.Context, e *domain.Expense) error {
	if f.failExpenseAfter > 0 && len(f.expenses) >= f.failExpenseAfter {
		return errors.New("disk full")
	}
	f.nextID++
	e.ID = f.nextID
	f.expenses = append(f.expenses, *e)
	return nil
}

func (f *fakeStore) GetExpenses(_ context.Context, userID int64, since domain.Instant, limit int) ([]domain.Expense, error) {
	var out []domain.Expense
	for _, e := range f.expenses {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) AddIncome(_ context.Context, in *domain.Income) error {
	f.nextID++
	in.ID = f.nextID
	f.incomes = append(f.incomes, *in)
	return nil
}

func (f *fakeStore) GetIncomes(_ context.Context, userID int64) ([]domain.Income, error) {
	var out []domain.Income
	for _, in := range f.incomes {
		if in.UserID == userID {
			out = append(out, in)
		}
	}
	return out, nil
}

func (f *fakeStore) AddReminder(_ context.Context, r *domain.Reminder) error {
	f.nextID++
	r.ID = f.nextID
	f.reminders = append(f.reminders, *r)
	return nil
}

type fakeExtractor struct {
	items    []domain.ExpenseItem
	income   domain.IncomeItem
	timezone string
	answer   string
	calls    int
}

func (f *fakeExtractor) ExtractExpense(_ context.Context, text, lang, cur string) domain.ExpenseItem {
	f.calls++
	if len(f.items) > 0 {
		return f.items[0]
	}
	return domain.ExpenseItem{}
}

func (f *fakeExtractor) ExtractExpenses(_ context.Context, text, lang, cur string) []domain.ExpenseItem {
	f.calls++
	return f.items
}

func (f *fakeExtractor) ExtractIncome(_ context.Context, text, lang, cur string) domain.IncomeItem {
	f.calls++
	return f.income
}

func (f *fakeExtractor) ResolveCountryTimezone(_ context.Context, country string) string {
	f.calls++
	return f.timezone
}

func (f *fakeExtractor) AnswerReport(_ context.Context, question, lang, digest string) (string, error) {
	f.calls++
	return f.answer, nil
}

type fakeResolver struct {
	at  domain.Instant
	err error
}

func (f *fakeResolver) Resolve(_ context.Context, text, lang string, _ *time.Location) (domain.Instant, error) {
	return f.at, f.err
}

type fakeScheduler struct {
	scheduled []domain.Reminder
	nudged    []int64
}

func (f *fakeScheduler) Schedule(r domain.Reminder)      { f.scheduled = append(f.scheduled, r) }
func (f *fakeScheduler) ScheduleNudge(u domain.User)     { f.nudged = append(f.nudged, u.ID) }

type fakeTransport struct {
	sent []Message
}

func (f *fakeTransport) Send(msg Message) error {
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeTransport) last(t *testing.T) Message {
	t.Helper()
	if len(f.sent) == 0 {
		t.Fatal("nothing was sent")
	}
	return f.sent[len(f.sent)-1]
}

type fakeTranscriber struct {
	text string
	err  error
}

func (f *fakeTranscriber) Transcribe(_ context.Context, fileRef string) (string, error) {
	return f.text, f.err
}

type fakeGeo struct{ zone string }

func (f *fakeGeo) ResolveTimezone(lat, lon float64) string { return f.zone }

type fixture struct {
	bot   *Bot
	store *fakeStore
	ai    *fakeExtractor
	times *fakeResolver
	sched *fakeScheduler
	out   *fakeTransport
	stt   *fakeTranscriber
}

func newFixture() *fixture {
	f := &fixture{
		store: newFakeStore(),
		ai:    &fakeExtractor{},
		times: &fakeResolver{},
		sched: &fakeScheduler{},
		out:   &fakeTransport{},
		stt:   &fakeTranscriber{},
	}
	f.bot = New(Deps{
		Store:       f.store,
		Extractor:   f.ai,
		Times:       f.times,
		Scheduler:   f.sched,
		Transport:   f.out,
		Transcriber: f.stt,
		Locations:   &fakeGeo{zone: "Asia/Tashkent"},
		Log:         zerolog.New(io.Discard),
	})
	return f
}

// knownUser seeds a user past onboarding: language picked, timezone set.
func (f *fixture) knownUser(lang string) *domain.User {
	u := &domain.User{ID: 1, ChatID: 10, Language: lang, Timezone: "Asia/Tashkent", Currency: "USD"}
	f.store.users[1] = u
	return u
}

func (f *fixture) text(t *testing.T, text string) {
	t.Helper()
	f.bot.HandleMessage(context.Background(), Incoming{UserID: 1, ChatID: 10, Text: text})
}

func (f *fixture) callback(t *testing.T, data string) {
	t.Helper()
	f.bot.HandleCallback(context.Background(), Callback{UserID: 1, ChatID: 10, Data: data})
}

func TestFirstContactStartsOnboarding(t *testing.T) {
	f := newFixture()

	f.text(t, "hello")

	msg := f.out.last(t)
	if !strings.Contains(msg.Text, "SmartExpenseBot") {
		t.Errorf("welcome text = %q", msg.Text)
	}
	if msg.Keyboard == nil || !msg.Keyboard.Inline {
		t.Fatal("welcome did not carry the language keyboard")
	}
}

func TestStartResetsPendingAndMode(t *testing.T) {
	f := newFixture()
	f.knownUser(domain.LangEnglish)
	f.bot.modes.Set(1, session.ModeReminder)
	f.bot.ledger.StageExpenses(1, []domain.ExpenseItem{{Amount: 5}})

	f.text(t, "/start")

	if f.bot.ledger.Has(1) {
		t.Error("pending entry survived /start")
	}
	if f.bot.modes.Get(1) != session.ModeNone {
		t.Error("mode survived /start")
	}
}

func TestMenuLabelEntersMode(t *testing.T) {
	tests := []struct {
		label string
		want  session.Mode
	}{
		{"expenses", session.ModeExpense},
		{"reminders", session.ModeReminder},
		{"reports", session.ModeReport},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			f := newFixture()
			f.knownUser(domain.LangEnglish)

			f.text(t, i18n.T(domain.LangEnglish, tt.label))

			if got := f.bot.modes.Get(1); got != tt.want {
				t.Errorf("mode = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStaleKeyboardLabelStillMatches(t *testing.T) {
	f := newFixture()
	f.knownUser(domain.LangEnglish)

	// The on-screen keyboard still shows the Russian label from before a
	// language switch.
	f.text(t, i18n.T(domain.LangRussian, "expenses"))

	if got := f.bot.modes.Get(1); got != session.ModeExpense {
		t.Errorf("mode = %v, want ModeExpense", got)
	}
	// The prompt itself answers in the user's current language.
	if want := i18n.T(domain.LangEnglish, "expense_prompt"); f.out.last(t).Text != want {
		t.Errorf("prompt = %q, want %q", f.out.last(t).Text, want)
	}
}

func TestBackClearsMode(t *testing.T) {
	f := newFixture()
	f.knownUser(domain.LangEnglish)
	f.bot.modes.Set(1, session.ModeReminder)

	f.text(t, i18n.T(domain.LangEnglish, "back"))

	if f.bot.modes.Get(1) != session.ModeNone {
		t.Error("back did not clear the mode")
	}
}

func TestPendingDominatesBack(t *testing.T) {
	f := newFixture()
	f.knownUser(domain.LangEnglish)
	f.bot.modes.Set(1, session.ModeExpense)
	f.bot.ledger.StageExpenses(1, []domain.ExpenseItem{{Amount: 5, Currency: "USD", Category: domain.CategoryFood, Description: "coffee"}})

	f.text(t, i18n.T(domain.LangEnglish, "back"))

	if !f.bot.ledger.Has(1) {
		t.Error("back discarded the pending entry")
	}
	if f.bot.modes.Get(1) != session.ModeExpense {
		t.Error("back changed the mode despite the pending entry")
	}
	// The reply is a re-ask, not the main menu.
	if msg := f.out.last(t); msg.Keyboard == nil || !msg.Keyboard.Inline {
		t.Error("re-ask did not carry the confirm keyboard")
	}
}

func TestTwoItemExpenseFlow(t *testing.T) {
	f := newFixture()
	f.knownUser(domain.LangEnglish)
	f.ai.items = []domain.ExpenseItem{
		{Amount: 5, Currency: "USD", Category: domain.CategoryFood, Description: "coffee"},
		{Amount: 3, Currency: "USD", Category: domain.CategoryTransport, Description: "taxi"},
	}

	f.text(t, "coffee 5 dollars, taxi 3 dollars")

	summary := f.out.last(t)
	if !strings.Contains(summary.Text, "coffee") || !strings.Contains(summary.Text, "taxi") {
		t.Errorf("summary %q misses an item", summary.Text)
	}
	if len(f.store.expenses) != 0 {
		t.Fatal("expenses persisted before confirmation")
	}

	f.callback(t, "confirm_yes")

	if len(f.store.expenses) != 2 {
		t.Fatalf("saved %d expenses, want 2", len(f.store.expenses))
	}
	if f.bot.ledger.Has(1) {
		t.Error("entry still pending after confirm")
	}
	if f.bot.modes.Get(1) != session.ModeNone {
		t.Error("mode not cleared after confirm")
	}
	if want := i18n.Tf(domain.LangEnglish, "expenses_saved", "count", "2"); f.out.last(t).Text != want {
		t.Errorf("ack = %q, want %q", f.out.last(t).Text, want)
	}
}

func TestPartialSaveCountsSuccesses(t *testing.T) {
	f := newFixture()
	f.knownUser(domain.LangEnglish)
	f.store.failExpenseAfter = 1
	f.ai.items = []domain.ExpenseItem{
		{Amount: 5, Description: "coffee", Category: domain.CategoryFood},
		{Amount: 3, Description: "taxi", Category: domain.CategoryTransport},
	}

	f.text(t, "coffee and taxi")
	f.callback(t, "confirm_yes")

	if len(f.store.expenses) != 1 {
		t.Fatalf("saved %d expenses, want 1", len(f.store.expenses))
	}
	if want := i18n.T(domain.LangEnglish, "expense_confirmed"); f.out.last(t).Text != want {
		t.Errorf("ack = %q, want %q for a single saved item", f.out.last(t).Text, want)
	}
}

func TestRejectKeepsMode(t *testing.T) {
	f := newFixture()
	f.knownUser(domain.LangEnglish)
	f.bot.modes.Set(1, session.ModeExpense)
	f.ai.items = []domain.ExpenseItem{{Amount: 5, Description: "coffee", Category: domain.CategoryFood}}

	f.text(t, "coffee 5")
	f.text(t, i18n.T(domain.LangEnglish, "no"))

	if len(f.store.expenses) != 0 {
		t.Error("rejected entry was persisted")
	}
	if f.bot.ledger.Has(1) {
		t.Error("entry still pending after reject")
	}
	if f.bot.modes.Get(1) != session.ModeExpense {
		t.Error("reject cleared the mode")
	}
}

func TestRejectOffModeExpenseReprompts(t *testing.T) {
	f := newFixture()
	f.knownUser(domain.LangEnglish)
	f.ai.items = []domain.ExpenseItem{{Amount: 5, Description: "coffee", Category: domain.CategoryFood}}

	// Free text outside any mode stages an expense; rejecting it re-asks
	// for the expense instead of falling back to the main menu.
	f.text(t, "coffee 5")
	f.text(t, i18n.T(domain.LangEnglish, "no"))

	if f.bot.ledger.Has(1) {
		t.Error("entry still pending after reject")
	}
	if want := i18n.T(domain.LangEnglish, "expense_prompt"); f.out.last(t).Text != want {
		t.Errorf("reply = %q, want %q", f.out.last(t).Text, want)
	}
}

func TestTimezoneKeyboardOffersCountryEntry(t *testing.T) {
	f := newFixture()
	u := f.knownUser(domain.LangEnglish)
	u.Timezone = domain.DefaultTimezone

	f.callback(t, "lang_en")

	kb := f.out.last(t).Keyboard
	if kb == nil {
		t.Fatal("timezone request carried no keyboard")
	}
	found := false
	for _, row := range kb.Rows {
		for _, btn := range row {
			if btn.Label == i18n.T(domain.LangEnglish, "enter_country") {
				found = true
			}
		}
	}
	if !found {
		t.Error("keyboard misses the country entry button")
	}
}

func TestCountryButtonRepromptsInsteadOfResolving(t *testing.T) {
	f := newFixture()
	u := f.knownUser(domain.LangEnglish)
	u.Timezone = domain.DefaultTimezone

	f.text(t, i18n.T(domain.LangEnglish, "enter_country"))

	if f.ai.calls != 0 {
		t.Error("the button label was sent to the timezone resolver")
	}
	if want := i18n.T(domain.LangEnglish, "request_location_for_timezone"); f.out.last(t).Text != want {
		t.Errorf("reply = %q, want %q", f.out.last(t).Text, want)
	}
}

func TestCountryFlowWhenTimezoneUnset(t *testing.T) {
	f := newFixture()
	u := f.knownUser(domain.LangEnglish)
	u.Timezone = domain.DefaultTimezone
	f.ai.timezone = "Asia/Tashkent"

	f.text(t, "Uzbekistan")

	if f.store.users[1].Timezone != "Asia/Tashkent" {
		t.Errorf("timezone = %q, want Asia/Tashkent", f.store.users[1].Timezone)
	}
	if len(f.sched.nudged) != 1 {
		t.Error("timezone change did not reschedule the daily nudge")
	}
}

func TestCountryFlowFailure(t *testing.T) {
	f := newFixture()
	u := f.knownUser(domain.LangEnglish)
	u.Timezone = domain.DefaultTimezone
	f.ai.timezone = ""

	f.text(t, "the moon")

	if want := i18n.T(domain.LangEnglish, "timezone_detection_failed"); f.out.last(t).Text != want {
		t.Errorf("reply = %q, want %q", f.out.last(t).Text, want)
	}
}

func TestLocationSetsTimezone(t *testing.T) {
	f := newFixture()
	u := f.knownUser(domain.LangEnglish)
	u.Timezone = domain.DefaultTimezone

	f.bot.HandleMessage(context.Background(), Incoming{
		UserID: 1, ChatID: 10,
		Location: &Coordinates{Latitude: 41.3, Longitude: 69.2},
	})

	if f.store.users[1].Timezone != "Asia/Tashkent" {
		t.Errorf("timezone = %q, want Asia/Tashkent", f.store.users[1].Timezone)
	}
}

func TestVoiceUnavailableSkipsExtraction(t *testing.T) {
	f := newFixture()
	f.knownUser(domain.LangEnglish)
	f.stt.err = errors.New("speech recognition is not available")

	f.bot.HandleMessage(context.Background(), Incoming{UserID: 1, ChatID: 10, Voice: "file123"})

	if f.ai.calls != 0 {
		t.Error("extraction ran although transcription failed")
	}
	if want := i18n.T(domain.LangEnglish, "voice_unavailable"); f.out.last(t).Text != want {
		t.Errorf("reply = %q, want %q", f.out.last(t).Text, want)
	}
}

func TestVoiceTranscriptRoutedAsExpense(t *testing.T) {
	f := newFixture()
	f.knownUser(domain.LangEnglish)
	f.stt.text = "coffee 5 dollars"
	f.ai.items = []domain.ExpenseItem{{Amount: 5, Description: "coffee", Category: domain.CategoryFood}}

	f.bot.HandleMessage(context.Background(), Incoming{UserID: 1, ChatID: 10, Voice: "file123"})

	if !f.bot.ledger.Has(1) {
		t.Error("voice expense was not staged")
	}
}

func TestIncomeFirstUseAsksCurrency(t *testing.T) {
	f := newFixture()
	u := f.knownUser(domain.LangEnglish)
	u.Currency = ""

	f.text(t, i18n.T(domain.LangEnglish, "income"))

	if want := i18n.T(domain.LangEnglish, "select_currency"); f.out.last(t).Text != want {
		t.Errorf("reply = %q, want %q", f.out.last(t).Text, want)
	}

	f.callback(t, "currency_UZS")

	if f.store.users[1].Currency != "UZS" {
		t.Errorf("currency = %q, want UZS", f.store.users[1].Currency)
	}
	// After the choice the income prompt follows.
	if want := i18n.T(domain.LangEnglish, "income_prompt"); f.out.last(t).Text != want {
		t.Errorf("follow-up = %q, want %q", f.out.last(t).Text, want)
	}
}

func TestIncomeConfirmFlow(t *testing.T) {
	f := newFixture()
	f.knownUser(domain.LangEnglish)
	f.bot.modes.Set(1, session.ModeIncome)
	f.ai.income = domain.IncomeItem{Amount: 2000, Currency: "USD", Description: "salary", Recurrence: domain.IncomeMonthly}

	f.text(t, "salary 2000 monthly")
	f.callback(t, "confirm_yes")

	if len(f.store.incomes) != 1 {
		t.Fatalf("saved %d incomes, want 1", len(f.store.incomes))
	}
	if f.store.incomes[0].Recurrence != domain.IncomeMonthly {
		t.Errorf("recurrence = %q", f.store.incomes[0].Recurrence)
	}
}

func TestReminderFlow(t *testing.T) {
	f := newFixture()
	f.knownUser(domain.LangEnglish)
	f.bot.modes.Set(1, session.ModeReminder)
	at := domain.NowInstant().Add(30 * time.Minute)
	f.times.at = at

	f.text(t, "remind me in 30 minutes to call mom")

	if len(f.store.reminders) != 1 {
		t.Fatalf("saved %d reminders, want 1", len(f.store.reminders))
	}
	r := f.store.reminders[0]
	if !r.RemindAt.Time().Equal(at.Time()) {
		t.Errorf("remind at %v, want %v", r.RemindAt, at)
	}
	if r.Message != "to call mom" {
		t.Errorf("message = %q, want the time phrase stripped", r.Message)
	}
	if len(f.sched.scheduled) != 1 {
		t.Error("reminder was not handed to the scheduler")
	}
}

func TestReminderPastRejected(t *testing.T) {
	f := newFixture()
	f.knownUser(domain.LangEnglish)
	f.bot.modes.Set(1, session.ModeReminder)
	f.times.err = timeparse.ErrPast

	f.text(t, "at 09:00 yesterday")

	if len(f.store.reminders) != 0 {
		t.Error("past reminder was persisted")
	}
	if want := i18n.T(domain.LangEnglish, "reminder_past"); f.out.last(t).Text != want {
		t.Errorf("reply = %q, want %q", f.out.last(t).Text, want)
	}
}

func TestReminderNoTimeReprompts(t *testing.T) {
	f := newFixture()
	f.knownUser(domain.LangEnglish)
	f.bot.modes.Set(1, session.ModeReminder)
	f.times.err = timeparse.ErrNoTime

	f.text(t, "buy milk")

	if len(f.store.reminders) != 0 {
		t.Error("reminder persisted without a time")
	}
	if want := i18n.T(domain.LangEnglish, "reminder_prompt"); f.out.last(t).Text != want {
		t.Errorf("reply = %q, want %q", f.out.last(t).Text, want)
	}
}

func TestReportPeriodTotals(t *testing.T) {
	f := newFixture()
	f.knownUser(domain.LangEnglish)
	f.store.expenses = []domain.Expense{
		{UserID: 1, Amount: 5, Category: domain.CategoryFood, Created: domain.NowInstant()},
		{UserID: 1, Amount: 3, Category: domain.CategoryFood, Created: domain.NowInstant()},
		{UserID: 1, Amount: 10, Category: domain.CategoryTransport, Created: domain.NowInstant()},
	}

	f.callback(t, "report_today")

	text := f.out.last(t).Text
	if !strings.Contains(text, "Food: 8") {
		t.Errorf("report %q misses the food total", text)
	}
	if !strings.Contains(text, "Transport: 10") {
		t.Errorf("report %q misses the transport total", text)
	}
}

func TestReportQuestionUsesDigest(t *testing.T) {
	f := newFixture()
	f.knownUser(domain.LangEnglish)
	f.bot.modes.Set(1, session.ModeReport)
	f.store.expenses = []domain.Expense{{UserID: 1, Amount: 5, Category: domain.CategoryFood, Created: domain.NowInstant()}}
	f.ai.answer = "You spent 5 USD on food."

	f.text(t, "how much did I spend on food?")

	if f.out.last(t).Text != "You spent 5 USD on food." {
		t.Errorf("answer = %q", f.out.last(t).Text)
	}
}
