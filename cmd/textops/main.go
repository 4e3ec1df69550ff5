// Package main provides the command-line interface for textops. It extracts
// readable content from HTML files or standard input, processing multiple
// files in parallel, and prints the results as JSON or plain text.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dataforge/textops"
)

// OutputFormat represents the supported output formats.
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatText OutputFormat = "text"
)

func main() {
	inputFiles := flag.String("input", "-", "Input HTML file path(s) (comma-separated, use '-' for stdin)")
	outputFile := flag.String("output", "", "Output file path (default: stdout)")
	formatStr := flag.String("format", "json", "Output format: json or text")
	minLength := flag.Int("min-length", 50, "Minimum body text length in bytes for a successful extraction")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = one per CPU)")
	digests := flag.Bool("digests", false, "Add content digests to results")
	compact := flag.Bool("compact", false, "Output compact JSON without indentation")
	verbose := flag.Bool("v", false, "Verbose logging")
	showVersion := flag.Bool("version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "textops - Extract readable content from HTML\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -input article.html\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -input a.html,b.html,c.html -output results.json\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  cat article.html | %s -format text\n", os.Args[0])
	}

	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).With().Timestamp().Logger()

	if *showVersion {
		fmt.Printf("%s version %s\n", textops.Name, textops.Version)
		return
	}

	format := OutputFormat(strings.ToLower(*formatStr))
	if format != FormatJSON && format != FormatText {
		log.Fatal().Str("format", *formatStr).Msg("invalid output format, must be json or text")
	}

	var inputs []string
	if *inputFiles == "" || *inputFiles == "-" {
		inputs = []string{"-"}
	} else {
		inputs = strings.Split(*inputFiles, ",")
	}

	// Read every input up front; the batch call processes them in parallel.
	documents := make([]string, len(inputs))
	for i, path := range inputs {
		var data []byte
		var err error
		if path == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(path)
		}
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("reading input")
		}
		documents[i] = string(data)
	}

	ext := textops.New(
		textops.WithMinTextLength(*minLength),
		textops.WithWorkers(*workers),
		textops.WithContentDigests(*digests),
	)

	start := time.Now()
	results := ext.ExtractTextBatch(documents)
	log.Debug().Int("documents", len(documents)).Dur("elapsed", time.Since(start)).Msg("batch complete")

	for i, res := range results {
		if res == nil {
			log.Warn().Str("input", inputs[i]).Msg("no extractable content")
		}
	}

	output := os.Stdout
	if *outputFile != "" {
		f, err := os.Create(*outputFile)
		if err != nil {
			log.Fatal().Err(err).Str("path", *outputFile).Msg("creating output file")
		}
		defer f.Close()
		output = f
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(output)
		if !*compact {
			enc.SetIndent("", "  ")
		}
		// The result array stays index-aligned with the inputs; failed
		// extractions appear as nulls.
		if err := enc.Encode(results); err != nil {
			log.Fatal().Err(err).Msg("writing output")
		}
	case FormatText:
		for _, res := range results {
			if res == nil {
				continue
			}
			if res.Title != "" {
				fmt.Fprintf(output, "%s\n\n", res.Title)
			}
			fmt.Fprintf(output, "%s\n", res.Text)
		}
	}
}
