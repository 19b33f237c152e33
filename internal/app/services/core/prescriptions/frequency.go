package prescriptions

// frequencyTimes maps every known frequency label onto the ordered
// time-of-day slots a medication is taken at. Stored times arrays are
// never trusted: old app versions wrote malformed or stale values, so the
// schedule is always recomputed from the frequency label.
var frequencyTimes = map[string][]string{
	"Once Daily":        {"09:00"},
	"Twice Daily":       {"09:00", "21:00"},
	"Three Times Daily": {"09:00", "14:00", "21:00"},
	"Four Times Daily":  {"06:00", "12:00", "18:00", "22:00"},
	"Every Morning":     {"08:00"},
	"Every Night":       {"21:00"},
	"Before Meals":      {"07:30", "12:30", "19:30"},
	"As Needed":         {},
}

var defaultTimes = []string{"09:00"}

// LookupTimes returns a fresh copy so callers can't mutate the table.
func LookupTimes(frequency string) []string {
	times, ok := frequencyTimes[frequency]
	if !ok {
		times = defaultTimes
	}
	out := make([]string, len(times))
	copy(out, times)
	return out
}
