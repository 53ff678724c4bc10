package cli

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether the given file descriptor is a terminal.
func IsTTY(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// IsInteractive reports whether stdin is a TTY, i.e. whether a human is
// sitting at this process rather than piping input into it.
func IsInteractive() bool {
	return IsTTY(os.Stdin.Fd())
}

// IsOutputTerminal reports whether stdout is a TTY. review uses this to
// decide whether to colorize status text; piped or redirected
// output stays plain so it composes with grep/jq.
func IsOutputTerminal() bool {
	return IsTTY(os.Stdout.Fd())
}
