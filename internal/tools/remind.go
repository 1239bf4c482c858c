package tools

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

const remindFormatError = "Format error. Use: REMIND <minutes> <reason>"

var ErrBadReminder = errors.New("bad reminder argument")

// maxReminderMinutes keeps minutes*time.Minute inside a time.Duration.
const maxReminderMinutes = float64(math.MaxInt64 / int64(time.Minute))

type Reminder struct {
	Minutes float64
	Delay   time.Duration
	Reason  string
}

// ParseReminder reads "<minutes> <reason...>". Surrounding quotes and
// periods are trimmed first; a missing reason becomes "timer".
func ParseReminder(arg string) (Reminder, error) {
	clean := strings.Trim(strings.TrimSpace(arg), `".`)
	head, reason, _ := strings.Cut(clean, " ")

	minutes, err := strconv.ParseFloat(head, 64)
	if err != nil {
		return Reminder{}, ErrBadReminder
	}
	if math.IsNaN(minutes) || minutes < 0 || minutes > maxReminderMinutes {
		return Reminder{}, ErrBadReminder
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = "timer"
	}
	return Reminder{
		Minutes: minutes,
		Delay:   time.Duration(minutes * float64(time.Minute)),
		Reason:  reason,
	}, nil
}

// ReminderText is the alert sent to the chat when a reminder fires.
func ReminderText(reason string) string {
	return "⏰ **ACHTUNG! REMINDER:** " + reason
}
