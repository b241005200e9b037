package gitw

import (
	"fmt"
	"strings"
)

const sshSpecialChars = " \t\n\r\"'`$\\|&;<>(){}[]!*?"

// Escape a single argument for use inside GIT_SSH_COMMAND.
// Every shell-special character is individually backslash-prefixed.
func EscapeShellArg(input string) string {
	var result strings.Builder
	result.Grow(len(input))

	for _, ch := range input {
		if strings.ContainsRune(sshSpecialChars, ch) {
			result.WriteByte('\\')
		}
		result.WriteRune(ch)
	}

	return result.String()
}

// Build the GIT_SSH_COMMAND value for a given private key path.
func BuildSSHCommand(keyPath string) string {
	return fmt.Sprintf(
		"ssh -i %s -o IdentitiesOnly=yes -o StrictHostKeyChecking=accept-new",
		EscapeShellArg(keyPath),
	)
}
