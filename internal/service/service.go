package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"github.com/popey/youtube-chapter-generator/internal/artifacts"
	"github.com/popey/youtube-chapter-generator/internal/caption"
	"github.com/popey/youtube-chapter-generator/internal/chatlog"
	"github.com/popey/youtube-chapter-generator/internal/config"
	"github.com/popey/youtube-chapter-generator/internal/downloader"
	"github.com/popey/youtube-chapter-generator/internal/prompt"
	"github.com/popey/youtube-chapter-generator/pkg/file"
	"github.com/popey/youtube-chapter-generator/pkg/log"
)

// lockFileName guards a working directory against concurrent runs, which
// would race on artifact filename selection.
const lockFileName = ".ytchapters.lock"

// TextGenerator is the generative backend boundary: one prompt in, one
// response text out.
type TextGenerator interface {
	GenerateContent(ctx context.Context, modelID, promptText string) (string, error)
}

// Options configure a single pipeline run.
type Options struct {
	URL          string
	Model        string // short selector name; unknown names fall back to the default
	TemplatePath string // optional instruction-template override file
	Workdir      string
}

// Result reports what a run produced.
type Result struct {
	VideoID      string
	Title        string
	ModelID      string
	Chapters     string // backend's raw response text
	ChaptersPath string
	LinksPath    string // empty when no links were found
}

// ChapterService drives the whole pipeline: downloader invocations, artifact
// location, evidence extraction, prompt assembly, backend call, and output
// persistence.
type ChapterService struct {
	dl  downloader.Client
	gen TextGenerator
}

func NewChapterService(dl downloader.Client, gen TextGenerator) *ChapterService {
	return &ChapterService{
		dl:  dl,
		gen: gen,
	}
}

// Run executes one pipeline pass for opts.URL. All fatal conditions surface
// as *PipelineError; degraded conditions (missing subtitles, missing chat,
// malformed chat lines) are logged and processing continues with whatever
// evidence remains.
func (s *ChapterService) Run(ctx context.Context, opts Options) (*Result, error) {
	workdir := opts.Workdir
	if workdir == "" {
		workdir = "."
	}

	lock := flock.New(filepath.Join(workdir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, NewErrorWithCause(ErrFileWrite, "failed to acquire working directory lock", err)
	}
	if !locked {
		return nil, NewError(ErrBusy, "working directory is locked by another run")
	}
	defer func() { _ = lock.Unlock() }()

	modelID := config.ResolveModel(opts.Model)

	log.Info("Retrieving video metadata...")
	fmt.Println("Retrieving video metadata...")

	meta, err := s.dl.FetchMetadata(opts.URL)
	if err != nil {
		return nil, NewErrorWithCause(ErrDownload, "failed to retrieve video information", err)
	}

	log.Info("Video title: %s", meta.Title)
	log.Info("Video ID: %s", meta.ID)
	log.Debug("Description: %s", meta.Description)
	fmt.Printf("Video title: %s\n", meta.Title)
	fmt.Printf("Video ID: %s\n", meta.ID)

	log.Info("Downloading subtitles...")
	fmt.Println("Downloading subtitles...")
	if err := s.dl.FetchSubtitles(opts.URL); err != nil {
		log.Warn("Subtitle download failed: %v", err)
	}

	log.Info("Attempting to download live chat (if available)...")
	fmt.Println("Attempting to download live chat (if available)...")
	if err := s.dl.FetchLiveChat(opts.URL); err != nil {
		log.Warn("Live chat download failed: %v", err)
	}

	names, err := file.ListNames(workdir)
	if err != nil {
		return nil, NewErrorWithCause(ErrFileRead, "failed to list working directory", err)
	}

	set := artifacts.Locate(meta.ID, names)

	subtitleContent := s.readArtifact(workdir, set.TranscriptName, "subtitle")
	chatContent := s.readArtifact(workdir, set.ChatLogName, "live chat")

	var links []chatlog.LinkRecord
	if chatContent != "" && set.ChatLogIsJSON() {
		links = chatlog.ExtractGitHubLinks(chatContent)
		log.Info("Found %d GitHub URLs in live chat", len(links))
		fmt.Printf("Found %d GitHub URLs in live chat\n", len(links))
	}

	transcript := caption.Normalize(subtitleContent)
	if transcript != "" {
		log.Info("Transcript language: %s", caption.DetectLanguage(transcript))
	}

	result := &Result{
		VideoID: meta.ID,
		Title:   meta.Title,
		ModelID: modelID,
	}

	// Links are worth keeping even if generation fails later.
	if len(links) > 0 {
		linksPath := filepath.Join(workdir, meta.ID+"_github_urls.txt")
		if err := file.WriteText(linksPath, renderLinks(links)); err != nil {
			return nil, NewErrorWithCause(ErrFileWrite, "failed to save extracted GitHub URLs", err)
		}
		result.LinksPath = linksPath
		log.Info("Extracted GitHub URLs saved to %s", linksPath)
		fmt.Printf("Extracted GitHub URLs saved to %s\n", linksPath)
	}

	template := ""
	if opts.TemplatePath != "" {
		template, err = prompt.LoadTemplate(opts.TemplatePath)
		if err != nil {
			return nil, NewErrorWithCause(ErrFileRead, "failed to read prompt template", err)
		}
	}

	promptText, err := prompt.Assemble(prompt.Input{
		Template:    template,
		Description: meta.Description,
		Transcript:  transcript,
		Links:       links,
		RawChat:     chatContent,
	})
	if err != nil {
		if errors.Is(err, prompt.ErrNoContent) {
			return nil, NewErrorWithCause(ErrNoContent, "nothing to summarize", err)
		}
		return nil, NewErrorWithCause(ErrUnknown, "failed to assemble prompt", err)
	}
	log.Debug("Assembled prompt:\n%s", promptText)

	log.Info("Generating chapter markers using model %s", modelID)
	fmt.Printf("\nGenerating chapter markers...\nUsing model: %s\n", modelID)

	chapters, err := s.gen.GenerateContent(ctx, modelID, promptText)
	if err != nil {
		return nil, NewErrorWithCause(ErrBackend, "generative backend call failed", err)
	}
	log.Debug("Backend response:\n%s", chapters)

	chaptersPath := filepath.Join(workdir, meta.ID+"_chapters.txt")
	if err := file.WriteText(chaptersPath, chapters); err != nil {
		return nil, NewErrorWithCause(ErrFileWrite, "failed to save chapter markers", err)
	}

	result.Chapters = chapters
	result.ChaptersPath = chaptersPath
	log.Info("Chapter markers saved to %s", chaptersPath)

	return result, nil
}

// readArtifact reads a located artifact; a missing or unreadable artifact is
// a degraded condition, not a fatal one.
func (s *ChapterService) readArtifact(workdir, name, kind string) string {
	if name == "" {
		log.Warn("No %s file found", kind)
		fmt.Printf("No %s file found.\n", kind)
		return ""
	}

	log.Info("Using %s file: %s", kind, name)
	fmt.Printf("Using %s file: %s\n", kind, name)

	content, err := os.ReadFile(filepath.Join(workdir, name))
	if err != nil {
		log.Warn("Failed to read %s file %s: %v", kind, name, err)
		return ""
	}

	return string(content)
}

func renderLinks(links []chatlog.LinkRecord) string {
	var b strings.Builder
	b.WriteString("GitHub URLs extracted from live chat:\n\n")
	for _, link := range links {
		fmt.Fprintf(&b, "%s - %s\n", link.Timestamp, link.URL)
	}
	return b.String()
}
