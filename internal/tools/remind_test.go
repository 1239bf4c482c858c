package tools

import (
	"testing"
	"time"
)

func TestParseReminder(t *testing.T) {
	tests := []struct {
		arg     string
		minutes float64
		delay   time.Duration
		reason  string
	}{
		{"30 turn off oven", 30, 30 * time.Minute, "turn off oven"},
		{`"5 laundry."`, 5, 5 * time.Minute, "laundry"},
		{"0.5 tea", 0.5, 30 * time.Second, "tea"},
		{"10", 10, 10 * time.Minute, "timer"},
		{"10 ", 10, 10 * time.Minute, "timer"},
		{"  2 take out the trash  ", 2, 2 * time.Minute, "take out the trash"},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := ParseReminder(tt.arg)
			if err != nil {
				t.Fatalf("ParseReminder(%q): %v", tt.arg, err)
			}
			if got.Minutes != tt.minutes || got.Delay != tt.delay || got.Reason != tt.reason {
				t.Errorf("ParseReminder(%q) = %+v", tt.arg, got)
			}
		})
	}
}

func TestParseReminder_Errors(t *testing.T) {
	for _, arg := range []string{"", "soon laundry", "-5 laundry", "NaN x", "inf x", "1e300 forever"} {
		t.Run(arg, func(t *testing.T) {
			if _, err := ParseReminder(arg); err == nil {
				t.Errorf("ParseReminder(%q) should fail", arg)
			}
		})
	}
}

func TestReminderText(t *testing.T) {
	if got := ReminderText("oven"); got != "⏰ **ACHTUNG! REMINDER:** oven" {
		t.Errorf("ReminderText = %q", got)
	}
}
