package downloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestDecodeMetadata(t *testing.T) {
	data := []byte(`{
		"id": "vid42",
		"title": "My Livestream",
		"description": "We built a thing.",
		"duration": 3600,
		"uploader": "popey"
	}`)

	meta, err := decodeMetadata(data)
	require.NoError(t, err)
	assert.Equal(t, "vid42", meta.ID)
	assert.Equal(t, "My Livestream", meta.Title)
	assert.Equal(t, "We built a thing.", meta.Description)
}

func TestDecodeMetadataDefaults(t *testing.T) {
	meta, err := decodeMetadata([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, "unknown", meta.ID)
	assert.Equal(t, "Unknown Title", meta.Title)
	assert.Equal(t, "", meta.Description)
}

func TestDecodeMetadataInvalidJSON(t *testing.T) {
	_, err := decodeMetadata([]byte("not json"))
	assert.Error(t, err)
}

func TestSubtitleArgs(t *testing.T) {
	y := &ytdlp{subLang: language.English}
	args := y.subtitleArgs()
	assert.Equal(t, []string{
		"--write-sub",
		"--write-auto-sub",
		"--sub-lang", "en",
		"--convert-subs", "srt",
	}, args)
}

func TestSubtitleArgsRegionalTagUsesBase(t *testing.T) {
	y := &ytdlp{subLang: language.AmericanEnglish}
	args := y.subtitleArgs()
	assert.Contains(t, args, "en")
	assert.NotContains(t, args, "en-US")
}

func TestLiveChatArgs(t *testing.T) {
	assert.Equal(t, []string{"--write-sub", "--sub-lang", "live_chat"}, liveChatArgs())
}
