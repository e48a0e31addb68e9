package youtube

import (
	"net/url"
	"regexp"
)

// Video IDs are always 11 URL-safe characters.
var idPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:v=|/v/|youtu\.be/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`embed/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`^([a-zA-Z0-9_-]{11})$`),
}

// ExtractVideoID pulls the 11-character video ID out of the supported
// YouTube URL forms, or accepts a bare ID. The patterns are tried in
// order and the first match wins. As a last resort the input is parsed
// as a URL and the `v` query parameter is used. Returns false when no
// ID can be found.
func ExtractVideoID(input string) (string, bool) {
	for _, pattern := range idPatterns {
		if match := pattern.FindStringSubmatch(input); len(match) > 1 {
			return match[1], true
		}
	}

	if parsed, err := url.Parse(input); err == nil && parsed.RawQuery != "" {
		if values, err := url.ParseQuery(parsed.RawQuery); err == nil {
			if id := values.Get("v"); id != "" {
				return id, true
			}
		}
	}

	return "", false
}
