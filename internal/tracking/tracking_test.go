package tracking

import (
	"fmt"
	"math/rand"
	"reflect"
	"sort"
	"sync"
	"testing"
	"testing/quick"
)

func TestAdjustUnknownID(t *testing.T) {
	tr := NewTracker()
	for _, lineno := range []int{1, 7, 100} {
		if got := tr.Adjust("missing.py", lineno); got != lineno {
			t.Errorf("Adjust(missing, %d) = %d, want %d", lineno, got, lineno)
		}
	}
}

func TestAdjust(t *testing.T) {
	tr := NewTracker()
	tr.Record("f.py", 3, 2)
	tr.Record("f.py", 10, -1)

	tests := []struct {
		lineno int
		want   int
	}{
		{1, 1},   // before every edit
		{3, 3},   // records strictly below only; 3 is not below 3
		{4, 6},   // shifted by the first edit
		{10, 12}, // the second record's own line is unaffected by itself
		{11, 12}, // shifted by both
	}
	for _, tt := range tests {
		if got := tr.Adjust("f.py", tt.lineno); got != tt.want {
			t.Errorf("Adjust(f.py, %d) = %d, want %d", tt.lineno, got, tt.want)
		}
	}
}

func TestAdjustIndependentIDs(t *testing.T) {
	tr := NewTracker()
	tr.Record("a.py", 1, 5)
	if got := tr.Adjust("b.py", 10); got != 10 {
		t.Errorf("edits to a.py leaked into b.py: got %d", got)
	}
	tr.Record("b.py", 2, 1)
	if got := tr.Adjust("a.py", 10); got != 15 {
		t.Errorf("Adjust(a.py, 10) = %d, want 15", got)
	}
	if got := tr.Adjust("b.py", 10); got != 11 {
		t.Errorf("Adjust(b.py, 10) = %d, want 11", got)
	}
}

func TestEditsCopy(t *testing.T) {
	tr := NewTracker()
	tr.Record("f.py", 1, 1)
	es := tr.Edits("f.py")
	es[0].Delta = 99
	if got := tr.Adjust("f.py", 2); got != 3 {
		t.Errorf("mutating the returned slice changed the tracker: Adjust = %d", got)
	}
	if tr.Edits("none") != nil {
		t.Error("Edits for unknown id should be nil")
	}
}

func TestTouched(t *testing.T) {
	tr := NewTracker()
	if tr.Touched("f.py") {
		t.Error("fresh tracker reports touched")
	}
	tr.Record("f.py", 1, 0)
	if !tr.Touched("f.py") {
		t.Error("recorded id not reported touched")
	}
}

// TestAdjustComposition checks the batch invariant: for edits applied in
// increasing original-line order, the adjustment before edit i equals its
// original line plus the deltas of all earlier edits at lower lines.
func TestAdjustComposition(t *testing.T) {
	f := func(lines []int, deltas []int) bool {
		sort.Ints(lines)
		tr := NewTracker()
		for i, lineno := range lines {
			want := lineno
			for j := 0; j < i; j++ {
				if lines[j] < lineno {
					want += deltas[j]
				}
			}
			if tr.Adjust("f.py", lineno) != want {
				return false
			}
			tr.Record("f.py", lineno, deltas[i])
		}
		return true
	}

	cfg := &quick.Config{
		Values: func(args []reflect.Value, rand *rand.Rand) {
			n := rand.Intn(12)
			lines := make([]int, n)
			deltas := make([]int, n)
			for i := range lines {
				lines[i] = 1 + rand.Intn(50)
				deltas[i] = rand.Intn(9) - 4
			}
			args[0] = reflect.ValueOf(lines)
			args[1] = reflect.ValueOf(deltas)
		},
	}
	if err := quick.Check(f, cfg); err != nil {
		t.Error(err)
	}
}

func TestConcurrentIDs(t *testing.T) {
	tr := NewTracker()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("file%d.py", i)
			for l := 1; l <= 100; l++ {
				tr.Record(id, l, 1)
				_ = tr.Adjust(id, l+1)
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < 8; i++ {
		id := fmt.Sprintf("file%d.py", i)
		// 100 edits, all below line 1000, each adding one line.
		if got := tr.Adjust(id, 1000); got != 1100 {
			t.Errorf("%s: Adjust(1000) = %d, want 1100", id, got)
		}
	}
}
