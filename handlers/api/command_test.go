package api

import "testing"

func TestExtractURL(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    string
		found   bool
	}{
		{
			name:    "Plain watch URL",
			command: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			found:   true,
		},
		{
			name:    "Watch URL with params inside text",
			command: "summarize https://youtube.com/watch?v=dQw4w9WgXcQ&t=30 for me",
			want:    "https://youtube.com/watch?v=dQw4w9WgXcQ&t=30",
			found:   true,
		},
		{
			name:    "Short URL inside text",
			command: "please summarize http://youtu.be/abc12345678 thanks",
			want:    "http://youtu.be/abc12345678",
			found:   true,
		},
		{
			name:    "Embed URL",
			command: "check https://www.youtube.com/embed/dQw4w9WgXcQ",
			want:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
			found:   true,
		},
		{
			name:    "Bare video ID",
			command: "dQw4w9WgXcQ",
			want:    "https://youtube.com/watch?v=dQw4w9WgXcQ",
			found:   true,
		},
		{
			name:    "No URL at all",
			command: "summarize my favorite podcast",
			found:   false,
		},
		{
			name:    "Empty command",
			command: "",
			found:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractURL(tt.command)
			if found != tt.found {
				t.Fatalf("expected found=%v, got %v", tt.found, found)
			}
			if found && got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
