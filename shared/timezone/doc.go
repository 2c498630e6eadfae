// Package timezone provides timezone utilities for the application.
//
// Event dates carry no zone of their own; they are interpreted in the
// application timezone so that "the day of the event" and "today" line up
// for the reminder window.
//
// Usage Examples:
//
//  1. Current time and conversions:
//     now := timezone.Now()
//     appTime := timezone.ToAppTime(someTime)
//
//  2. Parsing a plain calendar date as local midnight:
//     t, err := timezone.Parse("2006-01-02", "2026-10-29")
//
//  3. The reminder window fourteen days from now:
//     start, end := timezone.DayRange(timezone.Now(), 14)
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is automatically initialized when the package is imported.
package timezone
