package consoles

import (
	"fmt"
	"strings"
)

// MemoryConsole records everything printed to it, so tests can check the
// emitted lines without capturing stdout.
type MemoryConsole struct {
	prefixes []string
	lines    []string
}

func NewMemoryConsole() *MemoryConsole {
	return &MemoryConsole{}
}

func (o *MemoryConsole) Printf(format string, a ...any) {
	o.lines = append(o.lines, strings.Join(o.prefixes, "")+fmt.Sprintf(format, a...))
}

func (o *MemoryConsole) PushPrefix(format string, a ...any) {
	o.prefixes = append(o.prefixes, fmt.Sprintf(format, a...))
}

func (o *MemoryConsole) PopPrefix() {
	o.prefixes = o.prefixes[:len(o.prefixes)-1]
}

func (o *MemoryConsole) Lines() []string {
	return o.lines
}
