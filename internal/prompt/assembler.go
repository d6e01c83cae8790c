package prompt

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/popey/youtube-chapter-generator/internal/chatlog"
)

// Hard caps keeping the assembled prompt inside backend input limits. The
// cuts are plain character truncation, not sentence-aware.
const (
	transcriptCharLimit = 100000
	chatCharLimit       = 10000
)

// ErrNoContent is returned when there is nothing to summarize: neither
// transcript text nor live-chat content was available.
var ErrNoContent = errors.New("neither subtitles nor live chat could be retrieved")

// DefaultTemplate is the built-in instruction template used when the caller
// does not supply an override file.
const DefaultTemplate = `Your goal is to create a block of text in YouTube chapter format only.

User provides:
* Description from a youtube video
* Live chat log from the video (if available)
* Transcript from the video

Please create a list of timestamps in youtube description format that I can paste directly in the youtube video description to generate the chapter markers. It should list the time we start talking about something and a concise but descriptive topic name.

Follow these guidelines:
* Format each line exactly as: ` + "`[timestamp] [chapter title]`" + ` (e.g., "0:00 Introduction")
* Include 5-10 chapters depending on video length (more chapters for longer videos)
* Focus on major topic changes, demos, segments, or guest introductions
* Make chapter titles descriptive but concise (2-5 words is ideal)
* Start with a chapter at 0:00 (required by YouTube)
* Do not use backticks or other formatting in your response
* Do not include any explanatory text before or after the chapter markers

Suggest three hashtags for the end of the description, appropriate for the video content.
`

// Input carries everything the assembler folds into one prompt.
type Input struct {
	Template    string // instruction template; empty selects DefaultTemplate
	Description string
	Transcript  string // normalized transcript text
	Links       []chatlog.LinkRecord
	RawChat     string // raw live-chat file content
}

// Assemble builds the bounded prompt string sent to the generative backend.
// Sections appear in a fixed order: instructions, description, transcript,
// GitHub link block (omitted entirely when no links were found), raw chat.
//
// Returns ErrNoContent when both transcript and raw chat are empty; a prompt
// with neither would be degenerate and the pipeline has nothing to work with.
func Assemble(in Input) (string, error) {
	if in.Transcript == "" && in.RawChat == "" {
		return "", ErrNoContent
	}

	template := in.Template
	if template == "" {
		template = DefaultTemplate
	}

	var b strings.Builder
	b.WriteString(template)
	b.WriteString("\n\nVIDEO DESCRIPTION:\n")
	b.WriteString(in.Description)
	b.WriteString("\n\nTRANSCRIPT:\n")
	b.WriteString(truncate(in.Transcript, transcriptCharLimit))

	if len(in.Links) > 0 {
		b.WriteString("\n\nGitHub URLs from live chat (with timestamps):\n")
		for _, link := range in.Links {
			fmt.Fprintf(&b, "%s - %s\n", link.Timestamp, link.URL)
		}
	}

	b.WriteString("\n\nLIVE CHAT (if available):\n")
	b.WriteString(truncate(in.RawChat, chatCharLimit))
	b.WriteString("\n")

	return b.String(), nil
}

// LoadTemplate reads an instruction-template override from a file.
func LoadTemplate(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read prompt file %s: %w", path, err)
	}
	return string(content), nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
