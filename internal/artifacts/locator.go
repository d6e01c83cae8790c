package artifacts

import (
	"path/filepath"
	"strings"
)

// chatMarker classifies a filename as the live-chat artifact.
const chatMarker = "live_chat"

// Set holds the downloader artifacts selected for one video. Either name may
// be empty when no candidate was found. Names are relative to the working
// directory the listing came from.
type Set struct {
	TranscriptName string
	ChatLogName    string
}

// HasTranscript reports whether a transcript artifact was selected.
func (s Set) HasTranscript() bool { return s.TranscriptName != "" }

// HasChatLog reports whether a live-chat artifact was selected.
func (s Set) HasChatLog() bool { return s.ChatLogName != "" }

// ChatLogIsJSON reports whether the selected chat artifact is the structured
// replay-log format rather than a plain-text one.
func (s Set) ChatLogIsJSON() bool {
	return strings.EqualFold(filepath.Ext(s.ChatLogName), ".json")
}

// candidatePatterns returns the filename shapes yt-dlp is known to produce,
// in priority order. The naming convention varies by platform and
// configuration, so several shapes are tolerated per format extension.
func candidatePatterns(videoID string) []string {
	return []string{
		videoID + "*.srt",
		videoID + "*.vtt",
		"*" + videoID + "*.srt",
		"*" + videoID + "*.vtt",
		"*" + videoID + "*.json",
		`*\[` + videoID + `\]*.srt`,
		`*\[` + videoID + `\]*.vtt`,
		`*\[` + videoID + `\]*.en.srt`,
		`*\[` + videoID + `\]*en.srt`,
	}
}

// Locate disambiguates among the filenames of a working directory to pick at
// most one transcript artifact and at most one chat-log artifact for videoID.
//
// Patterns are tried in priority order, but the first filename matched for a
// role wins and later matches for that role are ignored. Every candidate must
// additionally contain the literal video identifier, which keeps an unrelated
// video's files from being picked up when several videos share a directory.
func Locate(videoID string, names []string) Set {
	var set Set
	seen := make(map[string]bool)

	for _, pattern := range candidatePatterns(videoID) {
		for _, name := range names {
			if seen[name] {
				continue
			}
			if ok, err := filepath.Match(pattern, name); err != nil || !ok {
				continue
			}
			// stronger ownership check than the glob alone
			if !strings.Contains(name, videoID) {
				continue
			}
			seen[name] = true

			if strings.Contains(strings.ToLower(name), chatMarker) {
				if !set.HasChatLog() {
					set.ChatLogName = name
				}
			} else if !set.HasTranscript() {
				set.TranscriptName = name
			}
		}
	}

	return set
}
