// Package report reads failed-expectation records out of a test runner's
// JSON-lines output.
//
// Runners disagree on their exact schema, so the three fields of interest
// are addressed by configurable gjson paths. Lines that are not JSON or
// lack any of the fields are skipped; the runner is free to interleave
// other output.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tidwall/gjson"

	"github.com/dshills/accepttest/internal/config"
)

// maxLineSize bounds a single report line; actual values can carry whole
// multi-line outputs.
const maxLineSize = 4 * 1024 * 1024

// Edit is one requested rewrite: the file, the 1-indexed line of the
// statement ending the expectation literal, and the actual output to
// record.
type Edit struct {
	File   string
	Line   int
	Actual string
}

// Parse reads JSON lines from r and returns the edits in input order.
func Parse(r io.Reader, paths config.ReportPaths) ([]Edit, error) {
	var edits []Edit

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		line := sc.Text()
		if !gjson.Valid(line) {
			continue
		}
		file := gjson.Get(line, paths.File)
		lineno := gjson.Get(line, paths.Line)
		actual := gjson.Get(line, paths.Actual)
		if !file.Exists() || !lineno.Exists() || !actual.Exists() {
			continue
		}
		edits = append(edits, Edit{
			File:   file.String(),
			Line:   int(lineno.Int()),
			Actual: actual.String(),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	return edits, nil
}
