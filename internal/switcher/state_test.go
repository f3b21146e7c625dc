package switcher

import "testing"

func TestInitialSelection(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		reverse bool
		want    int
	}{
		{"empty", 0, false, 0},
		{"single", 1, false, 0},
		{"single reverse", 1, true, 0},
		{"two forward", 2, false, 1},
		{"two reverse", 2, true, 1},
		{"many forward", 5, false, 1},
		{"many reverse", 5, true, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InitialSelection(tt.count, tt.reverse)
			if got.Index != tt.want {
				t.Errorf("InitialSelection(%d, %v).Index = %d, want %d", tt.count, tt.reverse, got.Index, tt.want)
			}
			if got.Count != tt.count {
				t.Errorf("InitialSelection(%d, %v).Count = %d", tt.count, tt.reverse, got.Count)
			}
		})
	}
}

func TestSelectionNextWraps(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		count   int
		reverse bool
		want    int
	}{
		{"forward", 1, 4, false, 2},
		{"forward wraps", 3, 4, false, 0},
		{"reverse", 2, 4, true, 1},
		{"reverse wraps", 0, 4, true, 3},
		{"single forward", 0, 1, false, 0},
		{"single reverse", 0, 1, true, 0},
		{"empty", 0, 0, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Selection{Index: tt.index, Count: tt.count}.Next(tt.reverse)
			if got.Index != tt.want {
				t.Errorf("Next(%v) from %d/%d = %d, want %d", tt.reverse, tt.index, tt.count, got.Index, tt.want)
			}
		})
	}
}

func TestSelectionFullCycleReturnsToStart(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for _, reverse := range []bool{false, true} {
			s := Selection{Index: n / 2, Count: n}
			start := s.Index
			for i := 0; i < n; i++ {
				s = s.Next(reverse)
				if s.Index < 0 || s.Index >= n {
					t.Fatalf("index %d out of range for count %d", s.Index, n)
				}
			}
			if s.Index != start {
				t.Fatalf("after %d steps (reverse=%v) index = %d, want %d", n, reverse, s.Index, start)
			}
		}
	}
}

func TestPhaseString(t *testing.T) {
	for phase, want := range map[Phase]string{
		PhaseIdle:      "idle",
		PhaseOpen:      "open",
		PhaseCommitted: "committed",
		PhaseCancelled: "cancelled",
		Phase(42):      "unknown",
	} {
		if got := phase.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", phase, got, want)
		}
	}
	if PhaseOpen.Closed() || !PhaseCommitted.Closed() || !PhaseCancelled.Closed() {
		t.Fatal("unexpected Closed() result")
	}
}
