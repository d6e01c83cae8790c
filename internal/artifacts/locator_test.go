package artifacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocateSelectsOwnFilesOnly(t *testing.T) {
	names := []string{
		"abc123.en.srt",
		"abc123.live_chat.json",
		"xyz999.en.srt",
	}

	set := Locate("abc123", names)
	assert.Equal(t, "abc123.en.srt", set.TranscriptName)
	assert.Equal(t, "abc123.live_chat.json", set.ChatLogName)
}

func TestLocateNothingFound(t *testing.T) {
	set := Locate("abc123", []string{"README.md", "xyz999.en.srt"})
	assert.False(t, set.HasTranscript())
	assert.False(t, set.HasChatLog())
}

func TestLocateEmptyListing(t *testing.T) {
	set := Locate("abc123", nil)
	assert.False(t, set.HasTranscript())
	assert.False(t, set.HasChatLog())
}

func TestLocateFirstMatchWins(t *testing.T) {
	// id-prefixed srt beats id-anywhere vtt because the srt pattern ranks first
	names := []string{
		"Some Title [abc123].en.vtt",
		"abc123.en.srt",
	}

	set := Locate("abc123", names)
	assert.Equal(t, "abc123.en.srt", set.TranscriptName)
}

func TestLocateVTTFallback(t *testing.T) {
	set := Locate("abc123", []string{"abc123.en.vtt"})
	assert.Equal(t, "abc123.en.vtt", set.TranscriptName)
	assert.False(t, set.HasChatLog())
}

func TestLocateBracketNaming(t *testing.T) {
	set := Locate("dQw4w9WgXcQ", []string{
		"Never Gonna Give You Up [dQw4w9WgXcQ].en.srt",
		"Never Gonna Give You Up [dQw4w9WgXcQ].live_chat.json",
	})
	assert.Equal(t, "Never Gonna Give You Up [dQw4w9WgXcQ].en.srt", set.TranscriptName)
	assert.Equal(t, "Never Gonna Give You Up [dQw4w9WgXcQ].live_chat.json", set.ChatLogName)
}

func TestLocateChatMarkerCaseInsensitive(t *testing.T) {
	set := Locate("abc123", []string{"abc123.Live_Chat.json"})
	assert.False(t, set.HasTranscript())
	assert.Equal(t, "abc123.Live_Chat.json", set.ChatLogName)
}

func TestLocateIgnoresLaterMatchesPerRole(t *testing.T) {
	// listing arrives sorted, as pkg/file.ListNames produces it
	names := []string{
		"abc123.en-US.srt",
		"abc123.en.srt",
		"abc123.live_chat.json",
		"other abc123.live_chat.json",
	}

	set := Locate("abc123", names)
	assert.Equal(t, "abc123.en-US.srt", set.TranscriptName) // first match within the first pattern
	assert.Equal(t, "abc123.live_chat.json", set.ChatLogName)
}

func TestLocateChatLogIsJSON(t *testing.T) {
	set := Set{ChatLogName: "abc123.live_chat.json"}
	assert.True(t, set.ChatLogIsJSON())

	set = Set{ChatLogName: "abc123.live_chat.srt"}
	assert.False(t, set.ChatLogIsJSON())

	assert.False(t, Set{}.ChatLogIsJSON())
}
