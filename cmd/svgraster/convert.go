package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pixelbound/svgraster"
)

func newConvertCommand() *cobra.Command {
	var (
		opts             = svgraster.DefaultOptions()
		output           string
		replacePairs     []string
		replacementsFile string
	)

	cmd := &cobra.Command{
		Use:   "convert [flags] [input.svg]",
		Short: "Render an SVG file to a raster image",
		Long: `Render an SVG document to PNG, JPEG, GIF or WebP.

Reads from the input file, or from stdin when the argument is omitted
or is "-". Writes to --output, or to stdout when omitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svgData, err := readInput(args)
			if err != nil {
				return err
			}

			fileReplacements, err := loadReplacementsFile(replacementsFile)
			if err != nil {
				return err
			}
			flagReplacements, err := parseReplacePairs(replacePairs)
			if err != nil {
				return err
			}
			opts.Replacements = append(fileReplacements, flagReplacements...)

			data, err := svgraster.Convert(string(svgData), opts)
			if err != nil {
				return err
			}

			return writeOutput(output, data)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.Format, "format", "f", opts.Format, "Output format: png, jpg, jpeg, gif, webp")
	flags.IntVarP(&opts.Width, "width", "w", 0, "Output width in pixels (0 = derive from the SVG)")
	flags.IntVarP(&opts.Height, "height", "H", 0, "Output height in pixels (0 = derive from the SVG)")
	flags.StringVarP(&opts.Background, "background", "b", "",
		fmt.Sprintf("Background color as RRGGBB hex for formats without alpha (default %s)", svgraster.DefaultBackground))
	flags.StringVarP(&output, "output", "o", "", "Output file (stdout when omitted)")
	flags.StringArrayVar(&replacePairs, "replace", nil, "Replacement pair as old=new, applied in order (repeatable)")
	flags.StringVar(&replacementsFile, "replacements-file", "", "YAML file with an ordered list of search/replace pairs")

	return cmd
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return data, nil
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// parseReplacePairs turns repeated --replace old=new flags into ordered
// replacement pairs. The value may contain further = characters; only
// the first one splits.
func parseReplacePairs(pairs []string) ([]svgraster.Replacement, error) {
	for _, pair := range pairs {
		if !strings.Contains(pair, "=") {
			return nil, fmt.Errorf("invalid --replace pair %q: expected old=new", pair)
		}
	}
	return lo.Map(pairs, func(pair string, _ int) svgraster.Replacement {
		parts := strings.SplitN(pair, "=", 2)
		return svgraster.Replacement{Search: parts[0], Replace: parts[1]}
	}), nil
}

// loadReplacementsFile reads an ordered list of search/replace pairs:
//
//	- search: "{{title}}"
//	  replace: Hello
func loadReplacementsFile(path string) ([]svgraster.Replacement, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read replacements file: %w", err)
	}

	var replacements []svgraster.Replacement
	if err := yaml.Unmarshal(data, &replacements); err != nil {
		return nil, fmt.Errorf("failed to parse replacements file %s: %w", path, err)
	}
	return replacements, nil
}
