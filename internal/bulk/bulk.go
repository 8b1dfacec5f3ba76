// Package bulk runs one single-file conversion per glob match,
// sequentially. Each file succeeds or fails on its own; a failure is
// reported and the remaining files are still processed.
package bulk

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mcncl/filefmt/internal/errors"
)

// ConvertFunc performs one single-file conversion.
type ConvertFunc func(inputPath, outputPath string) error

// Result summarizes a bulk run.
type Result struct {
	Converted int
	Failed    int

	// Failures maps each failed input path to its error.
	Failures map[string]error
}

// Run converts every file matching pattern into outputDir, deriving each
// output name from the input stem plus outputExt. Progress and per-file
// errors are written to progress; pass nil to discard them.
func Run(pattern, outputDir, outputExt string, convert ConvertFunc, progress io.Writer) (Result, error) {
	if progress == nil {
		progress = io.Discard
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return Result{}, errors.NewInputError(fmt.Sprintf("invalid glob pattern %q", pattern), err)
	}
	if len(matches) == 0 {
		return Result{}, errors.NewInputError(
			fmt.Sprintf("no files found matching pattern: %s", pattern), errors.ErrNoMatches)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return Result{}, errors.NewOutputError(
			fmt.Sprintf("failed to create output directory '%s'", outputDir), err)
	}

	res := Result{Failures: make(map[string]error)}
	total := len(matches)
	fmt.Fprintf(progress, "Found %d files to convert\n", total)

	for i, in := range matches {
		out := filepath.Join(outputDir, stem(in)+outputExt)
		fmt.Fprintf(progress, "[%d/%d] Converting %s to %s\n", i+1, total, in, out)

		if cerr := convert(in, out); cerr != nil {
			fmt.Fprintf(progress, "Error processing %s: %s\n", in, errors.UserFriendlyError(cerr))
			res.Failed++
			res.Failures[in] = cerr
			continue
		}
		res.Converted++
	}

	fmt.Fprintf(progress, "Bulk conversion complete. Processed %d files.\n", total)
	return res, nil
}

// stem returns the file name without directory or extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
