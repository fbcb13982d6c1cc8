package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Cutoff is a local wall-clock time of day.
type Cutoff struct {
	Hour   int
	Minute int
}

// EffectiveDate returns the schedule date to query right now: today in the
// given location, rolled back one calendar day before the cutoff so games
// that ran past midnight stay on the board through the morning.
func EffectiveDate(now time.Time, loc *time.Location, cutoff Cutoff) string {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	if local.Hour() < cutoff.Hour || (local.Hour() == cutoff.Hour && local.Minute() < cutoff.Minute) {
		local = local.AddDate(0, 0, -1)
	}
	return FormatDate(local)
}

// nflWeekRolloverHour is the local hour on Wednesday at which the displayed
// NFL week advances to the upcoming Thursday slate.
const nflWeekRolloverHour = 9

// NFLWeekDates returns the Thursday-through-Monday date window covering the
// NFL game week for the given instant. The window anchors on the most recent
// Thursday; from Wednesday 9 AM local onward it advances to the next week so
// the upcoming slate replaces the completed one.
func NFLWeekDates(now time.Time, loc *time.Location) []string {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)

	offset := (int(day.Weekday()) - int(time.Thursday) + 7) % 7
	weekStart := day.AddDate(0, 0, -offset)

	if local.Weekday() == time.Wednesday && local.Hour() >= nflWeekRolloverHour {
		weekStart = weekStart.AddDate(0, 0, 7)
	}

	dates := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		dates = append(dates, FormatDate(weekStart.AddDate(0, 0, i)))
	}
	return dates
}

// CompactDate strips the dashes from a YYYY-MM-DD date (ESPN's query format).
func CompactDate(date string) string {
	out := make([]byte, 0, len(date))
	for i := 0; i < len(date); i++ {
		if date[i] != '-' {
			out = append(out, date[i])
		}
	}
	return string(out)
}
