package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/popey/youtube-chapter-generator/internal/config"
	"github.com/popey/youtube-chapter-generator/internal/downloader"
	"github.com/popey/youtube-chapter-generator/internal/llm"
	"github.com/popey/youtube-chapter-generator/internal/service"
	"github.com/popey/youtube-chapter-generator/pkg/log"
)

const logFileName = "ytchapters.log"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		modelName  string
		promptPath string
		workdir    string
	)

	cmd := &cobra.Command{
		Use:   "ytchapters <url>",
		Short: "Generate YouTube chapter markers from a video's transcript and live chat",
		Long: "ytchapters downloads a video's metadata, subtitles and live chat replay\n" +
			"with yt-dlp, extracts GitHub links shared in chat, and asks a generative\n" +
			"model to produce a chapter list ready to paste into the video description.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional; a missing file is not an error
			_ = godotenv.Load()

			if fileLog, err := log.InitFileLogger(filepath.Join(workdir, logFileName), log.LevelDebug); err == nil {
				defer fileLog.Close()
			} else {
				log.InitLogger(log.LevelInfo)
			}

			cfg, err := config.NewFromEnv()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				fmt.Fprintln(os.Stderr, "Please set this variable in a .env file or export it in your shell.")
				return err
			}

			client, err := llm.NewClient(&cfg.LLM)
			if err != nil {
				return err
			}

			svc := service.NewChapterService(
				downloader.NewYtdlp(workdir, cfg.Subtitle.Language),
				client,
			)

			result, err := svc.Run(cmd.Context(), service.Options{
				URL:          args[0],
				Model:        modelName,
				TemplatePath: promptPath,
				Workdir:      workdir,
			})
			if err != nil {
				handler := service.NewDefaultErrorHandler()
				handler.Handle(err)
				fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
				var pipeErr *service.PipelineError
				if errors.As(err, &pipeErr) {
					fmt.Fprintf(os.Stderr, "%s\n", handler.GetAdvice(pipeErr))
				}
				return err
			}

			fmt.Printf("\nChapter markers generated and saved to %s\n", result.ChaptersPath)
			fmt.Println("\nGenerated Chapter Markers:")
			fmt.Println("===========================")
			fmt.Println(strings.TrimRight(result.Chapters, "\n"))
			fmt.Println("===========================")
			fmt.Println("\nYou can copy these timestamps directly into your YouTube video description.")

			return nil
		},
	}

	cmd.SilenceErrors = true
	cmd.Flags().StringVar(&modelName, "model", config.DefaultModel,
		"AI model to use ("+strings.Join(config.ModelNames(), ", ")+")")
	cmd.Flags().StringVar(&promptPath, "prompt", "",
		"path to a text file containing the prompt")
	cmd.Flags().StringVar(&workdir, "workdir", ".",
		"working directory for downloaded artifacts and output files")

	return cmd
}
