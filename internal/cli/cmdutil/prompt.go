package cmdutil

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Confirm asks a yes/no question on the invocation's input stream and
// returns the answer. It returns true without blocking when skip is set,
// machine mode is active, or stdin is not interactive: scripted use must
// never hang on a prompt.
func (o *Options) Confirm(question string, skip bool) bool {
	if skip || o.JSON || !o.interactive() {
		return true
	}
	fmt.Fprintf(o.ErrOut, "%s [y/N]: ", question)
	line, err := bufio.NewReader(o.In).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func (o *Options) interactive() bool {
	if f, ok := o.In.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	// Injected readers (tests) count as interactive.
	return true
}
