package chatlog

import (
	"encoding/json"
	"net/url"
	"strings"
)

// githubMarker identifies the code-hosting URLs worth keeping.
const githubMarker = "github.com/"

// LinkRecord is one GitHub hyperlink shared in live chat, keyed by the
// display timestamp it was posted at (e.g. "1:23:45").
type LinkRecord struct {
	Timestamp string
	URL       string
}

// The live-chat replay log is one JSON record per line; the file as a whole
// is not a valid JSON document. The structs below model only the subset of
// the record shape this extractor consults. Optional levels are pointers so
// a missing branch decodes to nil and the record is skipped.
type chatEvent struct {
	ReplayChatItemAction *replayChatItemAction `json:"replayChatItemAction"`
}

type replayChatItemAction struct {
	Actions []chatAction `json:"actions"`
}

type chatAction struct {
	AddChatItemAction *addChatItemAction `json:"addChatItemAction"`
}

type addChatItemAction struct {
	Item chatItem `json:"item"`
}

type chatItem struct {
	TextMessageRenderer *textMessageRenderer `json:"liveChatTextMessageRenderer"`
}

type textMessageRenderer struct {
	TimestampText simpleText  `json:"timestampText"`
	Message       chatMessage `json:"message"`
}

type simpleText struct {
	SimpleText string `json:"simpleText"`
}

type chatMessage struct {
	Runs []messageRun `json:"runs"`
}

type messageRun struct {
	NavigationEndpoint *navigationEndpoint `json:"navigationEndpoint"`
}

type navigationEndpoint struct {
	URLEndpoint *urlEndpoint `json:"urlEndpoint"`
}

type urlEndpoint struct {
	URL string `json:"url"`
}

// ExtractGitHubLinks scans live-chat replay log content for GitHub URLs
// posted in chat messages and returns them with their display timestamps,
// in the order they appear in the log (which is chronological).
//
// Lines that are not valid JSON, or records that do not match the expected
// shape at any nesting level, are skipped without error: replay logs
// routinely interleave non-message event types. An empty or entirely
// non-matching log yields an empty result.
func ExtractGitHubLinks(content string) []LinkRecord {
	var links []LinkRecord

	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		var event chatEvent
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			continue
		}
		if event.ReplayChatItemAction == nil {
			continue
		}

		for _, action := range event.ReplayChatItemAction.Actions {
			if action.AddChatItemAction == nil {
				continue
			}
			renderer := action.AddChatItemAction.Item.TextMessageRenderer
			if renderer == nil {
				continue
			}

			timestamp := renderer.TimestampText.SimpleText

			for _, run := range renderer.Message.Runs {
				if run.NavigationEndpoint == nil || run.NavigationEndpoint.URLEndpoint == nil {
					continue
				}

				candidate := resolveTrackingURL(run.NavigationEndpoint.URLEndpoint.URL)
				if !strings.Contains(candidate, githubMarker) {
					continue
				}

				links = append(links, LinkRecord{
					Timestamp: timestamp,
					URL:       candidate,
				})
			}
		}
	}

	return links
}

// resolveTrackingURL unwraps YouTube's redirect wrapper. Links posted in
// chat are rewritten to a tracking URL carrying the real destination in the
// "q" query parameter; a URL without that parameter is already the
// destination and is returned as-is.
func resolveTrackingURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	if target := parsed.Query().Get("q"); target != "" {
		return target
	}

	return raw
}
