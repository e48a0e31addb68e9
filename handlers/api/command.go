package api

import (
	"fmt"
	"regexp"
)

// Literal URL shapes a command may carry, tried in order.
var urlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(https?://(?:www\.)?youtube\.com/watch\?v=[a-zA-Z0-9_-]+(?:&[^\s]*)?)`),
	regexp.MustCompile(`(https?://youtu\.be/[a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`(https?://(?:www\.)?youtube\.com/embed/[a-zA-Z0-9_-]+)`),
}

var bareIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// ExtractURL locates a YouTube URL embedded in a free-form command
// string. A command that is nothing but an 11-character video ID is
// turned into a canonical watch URL. Returns false when the command
// carries no usable URL.
func ExtractURL(command string) (string, bool) {
	for _, pattern := range urlPatterns {
		if match := pattern.FindStringSubmatch(command); len(match) > 1 {
			return match[1], true
		}
	}

	if bareIDPattern.MatchString(command) {
		return fmt.Sprintf("https://youtube.com/watch?v=%s", command), true
	}

	return "", false
}
