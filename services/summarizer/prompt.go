package summarizer

import "fmt"

// Transcripts longer than this are cut before prompting so the request
// stays inside the model's context window.
const maxTranscriptChars = 100000

const truncationMarker = "\n\n[Transcript truncated...]"

const systemPrompt = `You are a podcast summarization expert. Given a podcast transcript, create a well-structured summary that captures the key information.

Your summary should include:
1. **Title & Overview** - A brief description of what the podcast is about
2. **Key Topics** - Main subjects discussed (bulleted list)
3. **Main Takeaways** - The most important insights and conclusions
4. **Notable Quotes** - Any memorable or impactful statements (if present)
5. **Summary** - A 2-3 paragraph executive summary

Be concise but comprehensive. Focus on actionable insights and key information.`

func truncateTranscript(transcript string) string {
	if len(transcript) > maxTranscriptChars {
		return transcript[:maxTranscriptChars] + truncationMarker
	}
	return transcript
}

func buildUserPrompt(sourceURL, transcript string) string {
	return fmt.Sprintf(`Please summarize the following podcast transcript:

Source URL: %s

Transcript:
%s`, sourceURL, transcript)
}
