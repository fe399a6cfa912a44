package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/flanksource/commons/logger"
	"github.com/spf13/cobra"

	"github.com/pixelbound/svgraster"
)

// Build information (set by goreleaser)
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var logFlags = logger.Flags{
	Level:       "info",
	LogToStderr: true,
}

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "svgraster",
		Short: "Convert SVG documents to raster image formats",
		Long: `svgraster renders SVG documents to PNG, JPEG, GIF or WebP.

Output dimensions default to the SVG's intrinsic size; setting only one
of --width/--height derives the other from the aspect ratio. Formats
without alpha support are composited over an opaque background color.
Template tokens in the SVG source can be substituted before rendering
with --replace pairs or a YAML replacements file.`,
		Example: `  svgraster convert logo.svg -o logo.png
  svgraster convert --format jpeg --width 800 --background 222222 -o banner.jpg banner.svg
  svgraster convert --replace '{{title}}=Hello' --format webp -o card.webp card.svg
  cat icon.svg | svgraster convert -f gif > icon.gif`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Configure(logFlags)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&logFlags.LevelCount, "loglevel", "v", "Increase logging level")
	flags.StringVar(&logFlags.Level, "log-level", "info", "Set the default log level")
	flags.BoolVar(&logFlags.JsonLogs, "json-logs", false, "Print logs in json format to stderr")

	rootCmd.AddCommand(newConvertCommand())
	rootCmd.AddCommand(newFormatsCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getVersionInfo())
		},
	}
}

func getVersionInfo() string {
	return fmt.Sprintf("svgraster %s (commit: %s, built: %s, go: %s)",
		version, commit, date, runtime.Version())
}

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported output formats",
		Run: func(cmd *cobra.Command, args []string) {
			for _, f := range svgraster.SupportedFormats() {
				fmt.Println(f)
			}
		},
	}
}
