// Package fileprocessor handles the line oriented processing of dump files.
package fileprocessor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/retrogolib/log"
	"github.com/tompreston/parse-dpcd/internal/dpcd"
	"github.com/tompreston/parse-dpcd/internal/options"
)

// Process decodes all configured dump files, or stdin if none are given,
// and writes the decoded registers to the configured output.
// Malformed lines are reported and skipped unless strict mode is enabled.
// In both modes a non-nil error is returned if any line failed, so that
// the caller can signal the failure through the exit status.
func Process(ctx context.Context, logger *log.Logger, opts options.Program, catalog *dpcd.Catalog) error {
	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if closer, ok := writer.(io.Closer); ok && writer != os.Stdout {
			_ = closer.Close()
		}
	}()

	decoder := dpcd.NewDecoder(catalog, opts.ExpandFields)

	var failed int
	if len(opts.Inputs) == 0 {
		failed, err = decodeStream(ctx, logger, opts, decoder, "stdin", os.Stdin, writer)
		if err != nil {
			return err
		}
	} else {
		for _, input := range opts.Inputs {
			n, err := decodeFile(ctx, logger, opts, decoder, input, writer)
			failed += n
			if err != nil {
				return err
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d dump line(s) failed to parse", failed)
	}
	return nil
}

func decodeFile(ctx context.Context, logger *log.Logger, opts options.Program,
	decoder *dpcd.Decoder, name string, writer io.Writer) (int, error) {

	file, err := os.Open(name)
	if err != nil {
		return 0, fmt.Errorf("opening file %s: %w", name, err)
	}
	defer func() { _ = file.Close() }()

	return decodeStream(ctx, logger, opts, decoder, name, file, writer)
}

// decodeStream reads the input line by line, skips blank lines and writes
// one decoded block per register byte. It returns the number of lines
// that failed to parse.
func decodeStream(ctx context.Context, logger *log.Logger, opts options.Program,
	decoder *dpcd.Decoder, name string, reader io.Reader, writer io.Writer) (int, error) {

	var failed int
	lineNumber := 0

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return failed, err
		}

		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		logger.Debug("Parsing line", log.String("line", line))

		base, values, err := dpcd.ParseLine(line)
		if err != nil {
			var formatErr *dpcd.FormatError
			if !errors.As(err, &formatErr) || opts.Strict {
				return failed, fmt.Errorf("%s line %d: %w", name, lineNumber, err)
			}
			logger.Error("Skipping malformed line",
				log.String("file", name),
				log.Int("line", lineNumber),
				log.Err(err),
			)
			failed++
			continue
		}

		for _, block := range decoder.DecodeLine(base, values) {
			if _, err := fmt.Fprintln(writer, block); err != nil {
				return failed, fmt.Errorf("writing output: %w", err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return failed, fmt.Errorf("reading %s: %w", name, err)
	}

	return failed, nil
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("parse-dpcd", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
