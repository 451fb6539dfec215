package hub

import (
	"errors"
	"strings"
)

var errUnterminatedQuote = errors.New("unterminated quote")

// parseCommand splits a hub line into the command name and its arguments.
// Arguments are name=value pairs; a value may be quoted to hold spaces.
// A bare word is stored with an empty value.
func parseCommand(line string) (string, map[string]string, error) {
	var name string
	var args = make(map[string]string)
	var s = strings.TrimSpace(line)
	for s != "" {
		var key, value string
		var i = strings.IndexAny(s, "= \t")
		if i == -1 {
			key, s = s, ""
		} else if s[i] != '=' {
			key, s = s[:i], s[i:]
		} else {
			key, s = s[:i], s[i+1:]
			if strings.HasPrefix(s, "\"") {
				var end = strings.IndexByte(s[1:], '"')
				if end == -1 {
					return "", nil, errUnterminatedQuote
				}
				value, s = s[1:end+1], s[end+2:]
			} else {
				var j = strings.IndexAny(s, " \t")
				if j == -1 {
					value, s = s, ""
				} else {
					value, s = s[:j], s[j:]
				}
			}
		}
		if name == "" {
			name = key
		} else {
			args[key] = value
		}
		s = strings.TrimLeft(s, " \t")
	}
	return name, args, nil
}

// formatValue quotes a value that would not survive parseCommand bare.
func formatValue(s string) string {
	if s == "" || strings.ContainsAny(s, " \t=") {
		return "\"" + s + "\""
	}
	return s
}
