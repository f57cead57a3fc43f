package services

import (
	"testing"
	"time"
)

func TestQuoteService_StableWithinOneDay(t *testing.T) {
	clock := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	s := NewQuoteService()
	s.now = func() time.Time { return clock }

	first := s.Daily()
	if first.Text == "" || first.Author == "" {
		t.Fatal("expected a non-empty quote")
	}

	clock = clock.Add(10 * time.Hour) // still March 1st
	for i := 0; i < 5; i++ {
		if got := s.Daily(); got != first {
			t.Fatalf("quote changed within the same day: %+v vs %+v", got, first)
		}
	}
}

func TestQuoteService_RepicksOnDayBoundary(t *testing.T) {
	clock := time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)
	s := NewQuoteService()
	s.now = func() time.Time { return clock }

	s.Daily()
	if s.day != "2026-03-01" {
		t.Fatalf("expected cache keyed to 2026-03-01, got %s", s.day)
	}

	clock = clock.Add(2 * time.Minute) // crosses midnight
	next := s.Daily()
	if s.day != "2026-03-02" {
		t.Fatalf("expected cache to roll to 2026-03-02, got %s", s.day)
	}

	found := false
	for _, q := range s.quotes {
		if q == next {
			found = true
			break
		}
	}
	if !found {
		t.Error("picked quote is not from the configured list")
	}

	// and the new day's pick is stable too
	if got := s.Daily(); got != next {
		t.Errorf("quote changed within the new day: %+v vs %+v", got, next)
	}
}
