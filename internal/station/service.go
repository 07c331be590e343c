package station

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Service interface {
	// Search returns stations whose name contains the query,
	// case-insensitively. An empty query yields no results and triggers no
	// fetch. Remote failures are logged and yield an empty result; they are
	// never surfaced to the caller.
	Search(ctx context.Context, query string) []*Station

	// GetByID resolves a station from the cached list. The second return is
	// false when the station is unknown or the list cannot be fetched.
	GetByID(ctx context.Context, id string) (*Station, bool)
}

type service struct {
	repo Repository
	ttl  time.Duration
	log  zerolog.Logger

	mu        sync.Mutex
	cached    []*Station
	fetchedAt time.Time
}

// NewService creates the station search service. The full station list is
// cached for ttl so repeated keystrokes do not refetch it.
func NewService(repo Repository, ttl time.Duration, log zerolog.Logger) Service {
	return &service{
		repo: repo,
		ttl:  ttl,
		log:  log,
	}
}

func (s *service) Search(ctx context.Context, query string) []*Station {
	if query == "" {
		return nil
	}

	stations, err := s.stations(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("station list fetch failed, returning empty suggestions")
		return nil
	}

	needle := strings.ToLower(query)
	var matches []*Station
	for _, st := range stations {
		if strings.Contains(strings.ToLower(st.Name), needle) {
			matches = append(matches, st)
		}
	}
	return matches
}

func (s *service) GetByID(ctx context.Context, id string) (*Station, bool) {
	stations, err := s.stations(ctx)
	if err != nil {
		s.log.Warn().Err(err).Str("station_id", id).Msg("station list fetch failed during lookup")
		return nil, false
	}

	for _, st := range stations {
		if st.ID == id {
			return st, true
		}
	}
	return nil, false
}

// stations returns the cached station list, refetching when the cache is
// older than the configured TTL.
func (s *service) stations(ctx context.Context) ([]*Station, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && time.Since(s.fetchedAt) < s.ttl {
		return s.cached, nil
	}

	stations, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	s.cached = stations
	s.fetchedAt = time.Now()
	return stations, nil
}
