package meeting

import (
	"strings"
	"time"
)

// ExpandInstances turns a recurrence rule into the concrete list of dated
// occurrences within [startDate, endDate]. It walks a single cursor date
// seeded at startDate and stops once the cursor passes endDate; an inverted
// range yields an empty list rather than an error.
//
// The cursor semantics are deliberate and must stay as they are:
//   - daily skips Saturdays and Sundays, advancing one day at a time
//   - weekly advances one day at a time and emits only when the cursor's
//     weekday name matches the rule (case-insensitive), so a mid-week start
//     still finds the first matching day
//   - monthly emits when the cursor's day-of-month equals the seed's and
//     advances one calendar month
func ExpandInstances(recType RecurrenceType, rule string, startDate, endDate time.Time, startTime, endTime string) ([]Instance, error) {
	startDate = truncateToDay(startDate)
	endDate = truncateToDay(endDate)

	var instances []Instance
	emit := func(date time.Time) {
		instances = append(instances, Instance{
			InstanceDate: date,
			StartTime:    startTime,
			EndTime:      endTime,
		})
	}

	if endDate.Before(startDate) {
		return instances, nil
	}

	switch recType {
	case RecurrenceOneTime:
		emit(startDate)

	case RecurrenceDaily:
		for cursor := startDate; !cursor.After(endDate); cursor = cursor.AddDate(0, 0, 1) {
			if wd := cursor.Weekday(); wd != time.Saturday && wd != time.Sunday {
				emit(cursor)
			}
		}

	case RecurrenceWeekly:
		if strings.TrimSpace(rule) == "" {
			return nil, ErrMissingRecurrenceRule
		}
		for cursor := startDate; !cursor.After(endDate); cursor = cursor.AddDate(0, 0, 1) {
			if strings.EqualFold(cursor.Weekday().String(), rule) {
				emit(cursor)
			}
		}

	case RecurrenceMonthly:
		seedDay := startDate.Day()
		for cursor := startDate; !cursor.After(endDate); cursor = cursor.AddDate(0, 1, 0) {
			if cursor.Day() == seedDay {
				emit(cursor)
			}
		}

	default:
		return nil, ErrInvalidRecurrenceType
	}

	return instances, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
