package youtube

import "testing"

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		found bool
	}{
		{
			name:  "Standard watch URL",
			input: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
			found: true,
		},
		{
			name:  "Watch URL with extra params",
			input: "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=30",
			want:  "dQw4w9WgXcQ",
			found: true,
		},
		{
			name:  "Short URL",
			input: "https://youtu.be/dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
			found: true,
		},
		{
			name:  "Short URL without TLS",
			input: "http://youtu.be/abc12345678",
			want:  "abc12345678",
			found: true,
		},
		{
			name:  "Old embed path",
			input: "https://www.youtube.com/v/dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
			found: true,
		},
		{
			name:  "Embed URL",
			input: "https://www.youtube.com/embed/dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
			found: true,
		},
		{
			name:  "Bare video ID",
			input: "dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
			found: true,
		},
		{
			name:  "Query param fallback",
			input: "youtube.com/watch?feature=shared&v=dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
			found: true,
		},
		{
			name:  "Query param fallback with nonstandard ID length",
			input: "https://www.youtube.com/watch?v=abc123&list=PLx",
			want:  "abc123",
			found: true,
		},
		{
			name:  "Not a URL",
			input: "not a url",
			found: false,
		},
		{
			name:  "Empty input",
			input: "",
			found: false,
		},
		{
			name:  "ID too short",
			input: "abc123",
			found: false,
		},
		{
			name:  "URL without video ID",
			input: "https://www.youtube.com/feed/subscriptions",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractVideoID(tt.input)
			if found != tt.found {
				t.Fatalf("expected found=%v, got %v", tt.found, found)
			}
			if found && got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestExtractVideoIDPatternOrder(t *testing.T) {
	// v= wins over embed/ because patterns are tried in order.
	input := "https://www.youtube.com/watch?v=aaaaaaaaaaa&next=embed/bbbbbbbbbbb"
	got, found := ExtractVideoID(input)
	if !found {
		t.Fatal("expected a match")
	}
	if got != "aaaaaaaaaaa" {
		t.Errorf("expected first pattern to win, got %q", got)
	}
}
