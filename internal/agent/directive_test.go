package agent

import (
	"testing"

	"github.com/chris/botbro/internal/tools"
)

func TestParseDirective(t *testing.T) {
	tests := []struct {
		reply string
		tool  tools.Name
		arg   string
	}{
		{"ACTION: SEARCH berlin weather", tools.Search, "berlin weather"},
		{"ugh fine... action: calc 2+2", tools.Calculate, "2+2"},
		{"ACTION:REMIND 30 turn off oven", tools.Remind, "30 turn off oven"},
		{"scheiße... ACTION: CHECK_SCHEDULE", tools.CheckSchedule, ""},
		{"line one\nACTION: Search  döner near me  \nignored line", tools.Search, "döner near me"},
		{"ACTION: CALC 1+1 and ACTION: SEARCH x", tools.Calculate, "1+1 and ACTION: SEARCH x"},
	}
	for _, tt := range tests {
		t.Run(tt.reply, func(t *testing.T) {
			d, ok := ParseDirective(tt.reply)
			if !ok {
				t.Fatalf("ParseDirective(%q) found no directive", tt.reply)
			}
			if d.Tool != tt.tool || d.Arg != tt.arg {
				t.Errorf("got %+v, want {%s %q}", d, tt.tool, tt.arg)
			}
		})
	}
}

func TestParseDirective_None(t *testing.T) {
	for _, reply := range []string{
		"just a normal answer",
		"ACTION: DANCE",
		"ACTION SEARCH missing colon",
		"",
	} {
		if d, ok := ParseDirective(reply); ok {
			t.Errorf("ParseDirective(%q) = %+v, want none", reply, d)
		}
	}
}
