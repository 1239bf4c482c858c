package agent

import (
	"regexp"
	"strings"

	"github.com/chris/botbro/internal/tools"
)

var directiveRE = regexp.MustCompile(`(?i)ACTION:\s*(SEARCH|CALC|REMIND|CHECK_SCHEDULE)\s*(.*)`)

// Directive is a tool request parsed from a model reply.
type Directive struct {
	Tool tools.Name
	Arg  string
}

// ParseDirective finds the first "ACTION: <TOOL> <arg>" in reply. The tool
// name is case-insensitive; the argument runs to the end of its line.
func ParseDirective(reply string) (Directive, bool) {
	m := directiveRE.FindStringSubmatch(reply)
	if m == nil {
		return Directive{}, false
	}
	return Directive{
		Tool: tools.Name(strings.ToUpper(m[1])),
		Arg:  strings.TrimSpace(m[2]),
	}, true
}
