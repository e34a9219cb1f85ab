package session

import (
	"testing"
	"time"
)

func TestRecordOnlyStrictlyFaster(t *testing.T) {
	st := NewStats()

	steps := []struct {
		time   time.Duration
		tokens int
		stored bool
		best   time.Duration
	}{
		{10 * time.Second, 0, true, 10 * time.Second},  // No record yet
		{10 * time.Second, 1, false, 10 * time.Second}, // Equal
		{12 * time.Second, 1, false, 10 * time.Second}, // Slower
		{9 * time.Second, 1, true, 9 * time.Second},    // Faster
	}

	for i, s := range steps {
		if got := st.Record(0, s.time, s.tokens); got != s.stored {
			t.Errorf("step %d: Record(%v) = %v, expected %v", i, s.time, got, s.stored)
		}
		rec, _ := st.Best(0)
		if rec.BestTime != s.best {
			t.Errorf("step %d: best = %v, expected %v", i, rec.BestTime, s.best)
		}
	}

	rec, _ := st.Best(0)
	if rec.Tokens != 1 {
		t.Errorf("tokens = %d, expected the count from the best run", rec.Tokens)
	}
}

func TestRecordFullRun(t *testing.T) {
	st := NewStats()
	if _, ok := st.BestFullRun(); ok {
		t.Fatal("empty stats should have no full run")
	}
	if !st.RecordFullRun(time.Minute) {
		t.Error("first full run should be stored")
	}
	if st.RecordFullRun(time.Minute) {
		t.Error("equal full run should not be stored")
	}
	if !st.RecordFullRun(50 * time.Second) {
		t.Error("faster full run should be stored")
	}
	if got, _ := st.BestFullRun(); got != 50*time.Second {
		t.Errorf("BestFullRun() = %v, expected 50s", got)
	}
}

func TestSegmentedBest(t *testing.T) {
	st := NewStats()
	st.Record(0, 10*time.Second, 0)
	st.Record(2, 30*time.Second, 0)

	if _, ok := st.SegmentedBest(3); ok {
		t.Error("segmented best needs a record for every level")
	}

	st.Record(1, 20*time.Second, 0)
	if got, ok := st.SegmentedBest(3); !ok || got != time.Minute {
		t.Errorf("SegmentedBest(3) = %v, %v; expected 1m", got, ok)
	}
	if _, ok := st.SegmentedBest(0); ok {
		t.Error("empty set has no segmented best")
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00.00"},
		{1234 * time.Millisecond, "0:01.23"},
		{59999 * time.Millisecond, "0:59.99"},
		{61 * time.Second, "1:01.00"},
		{12*time.Minute + 5*time.Second + 70*time.Millisecond, "12:05.07"},
		{-time.Second, "0:00.00"},
	}

	for _, tc := range tests {
		if got := FormatTime(tc.in); got != tc.want {
			t.Errorf("FormatTime(%v) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}
