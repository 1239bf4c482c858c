package logx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog/log"
)

func TestSetup_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, Config{})
	log.Debug().Msg("hidden")
	log.Info().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line logged at info level: %s", out)
	}
	if !strings.Contains(out, `"message":"shown"`) {
		t.Errorf("info line missing: %s", out)
	}
}

func TestSetup_Debug(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, Config{Debug: true})
	log.Debug().Msg("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("debug line missing: %s", buf.String())
	}
}

func TestPrintf(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, Config{})
	Printf{}.Printf("cron %s", "tick")
	if !strings.Contains(buf.String(), "cron tick") {
		t.Errorf("Printf output missing: %s", buf.String())
	}
}
