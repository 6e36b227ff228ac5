package bot

import (
	"strings"
	"unicode"
)

// Command names routed by the handler.
const (
	CommandStart = "start"
	CommandHelp  = "help"
	CommandCheck = "check"
)

// ParseCommand splits "/name[@bot] rest" into the command name and its trimmed argument.
// ok is false for plain text, and for commands explicitly addressed to a bot other than username.
// An empty username accepts any addressee.
func ParseCommand(text, username string) (command, args string, ok bool) {
	if !strings.HasPrefix(text, "/") {
		return "", "", false
	}

	head, rest := text, ""
	if idx := strings.IndexFunc(text, unicode.IsSpace); idx >= 0 {
		head, rest = text[:idx], text[idx:]
	}

	command = strings.TrimPrefix(head, "/")

	if name, addressee, found := strings.Cut(command, "@"); found {
		if username != "" && !strings.EqualFold(addressee, strings.TrimPrefix(username, "@")) {
			return "", "", false
		}

		command = name
	}

	if command == "" {
		return "", "", false
	}

	return command, strings.TrimSpace(rest), true
}
