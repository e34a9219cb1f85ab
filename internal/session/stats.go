package session

import (
	"fmt"
	"time"
)

// LevelRecord is the best completion of one level.
type LevelRecord struct {
	BestTime time.Duration
	Tokens   int // Challenge tokens collected on the best run
}

// Stats keeps best times in memory, keyed by level index.
type Stats struct {
	levels      map[int]LevelRecord
	bestFullRun time.Duration
	hasFullRun  bool
}

// NewStats creates an empty record book.
func NewStats() *Stats {
	return &Stats{levels: make(map[int]LevelRecord)}
}

// Record stores a completion if it beats the current best or none exists.
// Equal times do not replace the record. Returns true when stored.
func (s *Stats) Record(index int, t time.Duration, tokens int) bool {
	if rec, ok := s.levels[index]; ok && t >= rec.BestTime {
		return false
	}
	s.levels[index] = LevelRecord{BestTime: t, Tokens: tokens}
	return true
}

// Best returns the record for a level.
func (s *Stats) Best(index int) (LevelRecord, bool) {
	rec, ok := s.levels[index]
	return rec, ok
}

// RecordFullRun stores a full-run time if it is strictly faster.
func (s *Stats) RecordFullRun(t time.Duration) bool {
	if s.hasFullRun && t >= s.bestFullRun {
		return false
	}
	s.bestFullRun = t
	s.hasFullRun = true
	return true
}

// BestFullRun returns the fastest uninterrupted run from the first level.
func (s *Stats) BestFullRun() (time.Duration, bool) {
	return s.bestFullRun, s.hasFullRun
}

// SegmentedBest sums the best time of every level. It is only defined
// once each of the levelCount levels has a record.
func (s *Stats) SegmentedBest(levelCount int) (time.Duration, bool) {
	if levelCount <= 0 {
		return 0, false
	}
	var total time.Duration
	for i := 0; i < levelCount; i++ {
		rec, ok := s.levels[i]
		if !ok {
			return 0, false
		}
		total += rec.BestTime
	}
	return total, true
}

// FormatTime renders d as m:ss.cc (hundredths truncated).
func FormatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	minutes := ms / 60000
	seconds := (ms / 1000) % 60
	centis := (ms % 1000) / 10
	return fmt.Sprintf("%d:%02d.%02d", minutes, seconds, centis)
}
