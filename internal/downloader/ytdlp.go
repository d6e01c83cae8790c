package downloader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"golang.org/x/text/language"

	"github.com/popey/youtube-chapter-generator/pkg/log"
)

// Metadata holds the fields consulted from the downloader's JSON dump.
// Immutable once fetched.
type Metadata struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Client is the boundary to the external video/metadata downloader.
type Client interface {
	// FetchMetadata retrieves the video's metadata document. Failure here is
	// fatal to a pipeline run.
	FetchMetadata(videoURL string) (*Metadata, error)

	// FetchSubtitles asks the downloader to write a subtitle file into the
	// working directory, preferring human captions over auto-generated ones.
	FetchSubtitles(videoURL string) error

	// FetchLiveChat asks the downloader to write a live-chat replay log into
	// the working directory, when the video has one.
	FetchLiveChat(videoURL string) error
}

type ytdlp struct {
	command string
	workdir string
	subLang language.Tag
}

// NewYtdlp returns a Client backed by the yt-dlp command-line tool. All
// artifact files are written into workdir; subLang selects the subtitle
// language requested from the downloader.
func NewYtdlp(workdir string, subLang language.Tag) Client {
	return &ytdlp{
		command: "yt-dlp",
		workdir: workdir,
		subLang: subLang,
	}
}

func (y *ytdlp) FetchMetadata(videoURL string) (*Metadata, error) {
	stdout, err := y.run(videoURL, []string{"--dump-json"})
	if err != nil {
		return nil, err
	}
	return decodeMetadata(stdout)
}

func (y *ytdlp) FetchSubtitles(videoURL string) error {
	_, err := y.run(videoURL, y.subtitleArgs())
	return err
}

func (y *ytdlp) FetchLiveChat(videoURL string) error {
	_, err := y.run(videoURL, liveChatArgs())
	return err
}

// run invokes yt-dlp with --skip-download plus args and returns its stdout.
func (y *ytdlp) run(videoURL string, args []string) ([]byte, error) {
	cmdPath, err := exec.LookPath(y.command)
	if err != nil {
		return nil, fmt.Errorf("%s not found in PATH: %w", y.command, err)
	}

	full := append([]string{"--skip-download"}, args...)
	full = append(full, videoURL)

	cmd := exec.Command(cmdPath, full...)
	cmd.Dir = y.workdir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debug("Running %s %s", y.command, strings.Join(full, " "))

	if err := cmd.Run(); err != nil {
		return stdout.Bytes(), fmt.Errorf("%s failed: %w: %s",
			y.command, err, strings.TrimSpace(stderr.String()))
	}

	return stdout.Bytes(), nil
}

func (y *ytdlp) subtitleArgs() []string {
	base, _ := y.subLang.Base()
	return []string{
		"--write-sub",
		"--write-auto-sub",
		"--sub-lang", base.String(),
		"--convert-subs", "srt",
	}
}

func liveChatArgs() []string {
	return []string{
		"--write-sub",
		"--sub-lang", "live_chat",
	}
}

func decodeMetadata(data []byte) (*Metadata, error) {
	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse video metadata: %w", err)
	}
	if meta.ID == "" {
		meta.ID = "unknown"
	}
	if meta.Title == "" {
		meta.Title = "Unknown Title"
	}
	return &meta, nil
}
