package booking

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatRequestedSlot normalizes a date plus a 12-hour clock reading into
// the sortable "YYYY-MM-DD HH:MM:00" form the booking endpoint expects.
// Noon and midnight follow clock convention: 12 AM is hour 0, 12 PM stays
// hour 12.
func FormatRequestedSlot(date string, clock string) (string, error) {
	if date == "" || clock == "" {
		return "", fmt.Errorf("requested slot needs both date and time")
	}

	fields := strings.Fields(clock)
	if len(fields) != 2 {
		return "", fmt.Errorf("invalid time %q, want \"hh:mm AM/PM\"", clock)
	}
	hourMin, meridiem := fields[0], strings.ToUpper(fields[1])
	if meridiem != "AM" && meridiem != "PM" {
		return "", fmt.Errorf("invalid meridiem %q", fields[1])
	}

	parts := strings.Split(hourMin, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid time %q, want \"hh:mm AM/PM\"", clock)
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil || hh < 1 || hh > 12 {
		return "", fmt.Errorf("invalid hour %q", parts[0])
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil || mm < 0 || mm > 59 {
		return "", fmt.Errorf("invalid minute %q", parts[1])
	}

	if meridiem == "PM" && hh < 12 {
		hh += 12
	}
	if meridiem == "AM" && hh == 12 {
		hh = 0
	}

	return fmt.Sprintf("%s %02d:%02d:00", date, hh, mm), nil
}
