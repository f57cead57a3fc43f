package services

import (
	"math/rand"
	"sync"
	"time"
)

type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// QuoteService picks one quote per calendar day and caches it for the
// lifetime of the process. The cache is per instance: in a multi-instance
// deployment different instances may show different quotes until all of
// them roll over to the new day.
type QuoteService struct {
	quotes []Quote
	now    func() time.Time

	mu     sync.Mutex
	day    string
	cached Quote
}

func NewQuoteService() *QuoteService {
	return &QuoteService{
		quotes: defaultQuotes,
		now:    time.Now,
	}
}

// Daily returns the quote of the current calendar day. The pick happens
// at most once per day; a date change invalidates the cache and the next
// call picks afresh.
func (s *QuoteService) Daily() Quote {
	s.mu.Lock()
	defer s.mu.Unlock()

	day := s.now().Format("2006-01-02")
	if day != s.day {
		s.day = day
		s.cached = s.quotes[rand.Intn(len(s.quotes))]
	}

	return s.cached
}
