// Package accepttest rewrites expectation literals in test source files
// to match the output a test actually produced.
//
// Expectation-style tests record their expected output as a triple-quoted
// string literal next to the assertion. When the real output changes, the
// harness can "accept" the new output: it finds the literal by the line
// number of the failing assertion and rewrites its body in place,
// preserving the quote character, quote style, and raw marker whenever
// the new body allows it.
//
// # Core operations
//
// The low-level pieces are exposed directly:
//
//   - [LineStart] and [LineEnd] map 1-indexed line numbers to byte
//     offsets in a buffer.
//   - [ReplaceLiteral] rewrites the nearest triple-quoted literal whose
//     closing delimiter ends at or before a line, returning the new
//     buffer and the signed line-count delta.
//   - [ExtractLiteral] decodes such a literal back to its value.
//   - [Tracker] shifts line numbers recorded against the original file
//     across a sequence of edits, so a whole batch can be applied with
//     every edit stated in original-file coordinates.
//
// # Sessions
//
// [Session] ties the pieces together for a batch run: it adjusts each
// requested line through its tracker, rewrites the file, writes a
// one-time backup per touched file, and can journal every applied edit
// as JSON lines.
//
//	cfg := accepttest.DefaultConfig()
//	s := accepttest.NewSession(cfg)
//	res, err := s.Accept("sample_test.py", 3, actual)
//
// The accepttest command wraps sessions behind apply, check, revert, and
// watch subcommands driven by a test runner's JSON-lines report.
package accepttest
