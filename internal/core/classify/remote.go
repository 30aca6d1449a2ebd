package classify

import (
	"regexp"
	"strings"
)

// remoteHints matches whole-word remote markers in free text
var remoteHints = regexp.MustCompile(`(?i)\bremote\b|\bhybrid\b|\bwork from home\b|\bwfh\b`)

// Remote reports whether a posting should count as remote.
// allowed is the raw remote_allowed column: a true-like value ("1", "true",
// "1.0") decides immediately; anything else falls back to a whole-word scan
// over title, location, and description
func Remote(title, location, description, allowed string) bool {
	if trueLike(allowed) {
		return true
	}
	text := title + " " + location + " " + description
	return remoteHints.MatchString(text)
}

// trueLike mirrors the loose truthiness of the source feed's flag column
func trueLike(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "1.0", "true":
		return true
	}
	return false
}
