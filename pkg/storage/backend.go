package storage

// Backend is one logical key/value bucket. Implementations must be safe for
// concurrent use; Get reports ok=false when the key has never been written.
type Backend interface {
	Get(key string) (val string, ok bool, err error)
	Set(key, val string) error
	Probe() error
}

// Versioned collection keys, plus the pre-versioning keys read once for
// migration and never written again.
const (
	PlotsKey     = "farmmate_plots_v1"
	RemindersKey = "farmmate_reminders_v1"
	ExpensesKey  = "farmmate_expenses_v1"

	LegacyPlotsKey     = "farmmate_plots"
	LegacyRemindersKey = "farmmate_reminders"
	LegacyExpensesKey  = "farmmate_expenses"
)
