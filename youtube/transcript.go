package youtube

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Track is one available caption stream for a video.
type Track struct {
	BaseURL      string
	LanguageCode string
	Language     string
	IsGenerated  bool
}

// Entry is a single timed caption.
type Entry struct {
	Text     string
	Start    float64
	Duration float64
}

type ErrVideoUnavailable struct {
	VideoID string
}

func (e ErrVideoUnavailable) Error() string {
	return fmt.Sprintf("video %s is unavailable", e.VideoID)
}

type ErrNoTranscriptFound struct {
	VideoID string
}

func (e ErrNoTranscriptFound) Error() string {
	return fmt.Sprintf("no transcript found for video %s", e.VideoID)
}

// Client fetches caption tracks by scraping the watch page, the same
// way youtube-transcript-api does.
type Client struct {
	httpClient *http.Client
	watchURL   string
	logger     *logrus.Logger
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithWatchURL overrides the watch page URL template. Used by tests.
func WithWatchURL(format string) ClientOption {
	return func(c *Client) {
		c.watchURL = format
	}
}

func NewClient(options ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{},
		watchURL:   "https://www.youtube.com/watch?v=%s",
		logger:     logrus.StandardLogger(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// trackSelector is one strategy in the preference order for choosing a
// caption track. It returns the matching track and whether one was found.
type trackSelector func(tracks []Track) (Track, bool)

// Preference order: manually created English, then auto-generated
// English, then any English variant of either kind.
var trackSelectors = []trackSelector{
	func(tracks []Track) (Track, bool) {
		for _, t := range tracks {
			if !t.IsGenerated && t.LanguageCode == "en" {
				return t, true
			}
		}
		return Track{}, false
	},
	func(tracks []Track) (Track, bool) {
		for _, t := range tracks {
			if t.IsGenerated && t.LanguageCode == "en" {
				return t, true
			}
		}
		return Track{}, false
	},
	func(tracks []Track) (Track, bool) {
		for _, t := range tracks {
			switch t.LanguageCode {
			case "en", "en-US", "en-GB":
				return t, true
			}
		}
		return Track{}, false
	},
}

// selectTrack applies the preference order and returns the first match.
func selectTrack(tracks []Track) (Track, bool) {
	for _, selector := range trackSelectors {
		if track, ok := selector(tracks); ok {
			return track, true
		}
	}
	return Track{}, false
}

// Transcript returns the full caption text for a video, entries joined
// with single spaces. When listing or selecting a track fails, one
// last-resort fetch of the default track is attempted before giving up.
func (c *Client) Transcript(ctx context.Context, videoID string) (string, error) {
	text, err := c.preferredTranscript(ctx, videoID)
	if err == nil {
		return text, nil
	}

	c.logger.WithError(err).WithField("video_id", videoID).
		Warn("Error fetching transcript, trying default track")

	text, fallbackErr := c.defaultTranscript(ctx, videoID)
	if fallbackErr != nil {
		c.logger.WithError(fallbackErr).WithField("video_id", videoID).
			Warn("Fallback transcript fetch also failed")
		return "", errors.Wrap(err, "fetching transcript")
	}

	return text, nil
}

func (c *Client) preferredTranscript(ctx context.Context, videoID string) (string, error) {
	tracks, err := c.ListTracks(ctx, videoID)
	if err != nil {
		return "", err
	}

	track, ok := selectTrack(tracks)
	if !ok {
		return "", ErrNoTranscriptFound{VideoID: videoID}
	}

	entries, err := c.fetchTrack(ctx, track)
	if err != nil {
		return "", err
	}

	return joinEntries(entries), nil
}

// defaultTranscript takes the first track the video offers, regardless
// of language or kind.
func (c *Client) defaultTranscript(ctx context.Context, videoID string) (string, error) {
	tracks, err := c.ListTracks(ctx, videoID)
	if err != nil {
		return "", err
	}

	if len(tracks) == 0 {
		return "", ErrNoTranscriptFound{VideoID: videoID}
	}

	entries, err := c.fetchTrack(ctx, tracks[0])
	if err != nil {
		return "", err
	}

	return joinEntries(entries), nil
}

// ListTracks returns all caption tracks the video advertises on its
// watch page.
func (c *Client) ListTracks(ctx context.Context, videoID string) ([]Track, error) {
	if strings.TrimSpace(videoID) == "" {
		return nil, ErrVideoUnavailable{VideoID: videoID}
	}

	page, err := c.fetchWatchPage(ctx, videoID)
	if err != nil {
		return nil, err
	}

	tracks, err := parseCaptionTracks(page)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing caption tracks for video %s", videoID)
	}

	return tracks, nil
}

func (c *Client) fetchWatchPage(ctx context.Context, videoID string) (string, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, fmt.Sprintf(c.watchURL, videoID), nil,
	)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "requesting watch page")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", ErrVideoUnavailable{VideoID: videoID}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "reading watch page")
	}

	return string(body), nil
}

// parseCaptionTracks locates the player captions JSON embedded in the
// watch page and decodes its captionTracks list.
func parseCaptionTracks(page string) ([]Track, error) {
	const marker = `"captions":`
	start := strings.Index(page, marker)
	if start == -1 {
		return nil, fmt.Errorf("no captions data on watch page")
	}

	jsonStart := strings.Index(page[start:], "{")
	if jsonStart == -1 {
		return nil, fmt.Errorf("malformed captions data")
	}
	jsonStart += start

	// Walk braces to find the end of the captions object.
	depth := 1
	jsonEnd := -1
	for i := jsonStart + 1; i < len(page); i++ {
		switch page[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				jsonEnd = i + 1
			}
		}
		if jsonEnd != -1 {
			break
		}
	}
	if jsonEnd == -1 {
		return nil, fmt.Errorf("unterminated captions data")
	}

	var captions struct {
		Renderer struct {
			CaptionTracks []struct {
				BaseURL      string `json:"baseUrl"`
				LanguageCode string `json:"languageCode"`
				Kind         string `json:"kind"`
				Name         struct {
					SimpleText string `json:"simpleText"`
				} `json:"name"`
			} `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	}
	if err := json.Unmarshal([]byte(page[jsonStart:jsonEnd]), &captions); err != nil {
		return nil, fmt.Errorf("decoding captions JSON: %w", err)
	}

	tracks := make([]Track, 0, len(captions.Renderer.CaptionTracks))
	for _, t := range captions.Renderer.CaptionTracks {
		tracks = append(tracks, Track{
			BaseURL:      t.BaseURL,
			LanguageCode: t.LanguageCode,
			Language:     t.Name.SimpleText,
			IsGenerated:  t.Kind == "asr",
		})
	}

	return tracks, nil
}

func (c *Client) fetchTrack(ctx context.Context, track Track) ([]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, track.BaseURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "requesting caption track")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("caption track request returned %d", resp.StatusCode)
	}

	var doc struct {
		XMLName xml.Name `xml:"transcript"`
		Texts   []struct {
			Start float64 `xml:"start,attr"`
			Dur   float64 `xml:"dur,attr"`
			Text  string  `xml:",chardata"`
		} `xml:"text"`
	}
	if err := xml.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decoding caption track")
	}

	entries := make([]Entry, 0, len(doc.Texts))
	for _, t := range doc.Texts {
		entries = append(entries, Entry{
			Text:     html.UnescapeString(t.Text),
			Start:    t.Start,
			Duration: t.Dur,
		})
	}

	return entries, nil
}

func joinEntries(entries []Entry) string {
	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Text != "" {
			parts = append(parts, entry.Text)
		}
	}
	return strings.Join(parts, " ")
}
