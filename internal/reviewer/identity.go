// Package reviewer resolves the identity string recorded on a verdict
// (§6): the TRUEFLOW_REVIEWER environment variable, falling back to the OS
// username, falling back to "unknown".
package reviewer

import (
	"os"
	"os/user"
)

const envVar = "TRUEFLOW_REVIEWER"

// Identity resolves the current reviewer identity.
func Identity() string {
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "unknown"
}
