package console

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrinterPlain(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, false)

	p.Info("loading %s", "report")
	p.Success("applied %d", 3)
	p.Warning("skipping")
	p.Error("boom")

	want := "loading report\napplied 3\nskipping\nboom\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestDiff(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, false)

	err := p.Diff("expected", "actual", "a\nb\nc\n", "a\nx\nc\n")
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"--- expected", "+++ actual", "-b", "+x"} {
		if !strings.Contains(out, want) {
			t.Errorf("diff output missing %q:\n%s", want, out)
		}
	}
}

func TestDiffIdentical(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, false)
	if err := p.Diff("expected", "actual", "same\n", "same\n"); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("identical inputs should produce no diff, got %q", buf.String())
	}
}
