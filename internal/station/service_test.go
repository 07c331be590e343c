package station

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	stations []*Station
	err      error
	calls    int
}

func (f *fakeRepository) List(ctx context.Context) ([]*Station, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.stations, nil
}

func testStations() []*Station {
	return []*Station{
		{ID: "1", Name: "Central Station"},
		{ID: "2", Name: "North Station"},
		{ID: "3", Name: "South Central Hub"},
	}
}

func TestSearchFiltersBySubstring(t *testing.T) {
	repo := &fakeRepository{stations: testStations()}
	svc := NewService(repo, time.Minute, zerolog.Nop())

	matches := svc.Search(context.Background(), "Central")

	require.Len(t, matches, 2)
	assert.Equal(t, "1", matches[0].ID)
	assert.Equal(t, "3", matches[1].ID)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	repo := &fakeRepository{stations: testStations()}
	svc := NewService(repo, time.Minute, zerolog.Nop())

	matches := svc.Search(context.Background(), "cenTRAL")

	require.Len(t, matches, 2)
}

func TestSearchEmptyQueryDoesNotFetch(t *testing.T) {
	repo := &fakeRepository{stations: testStations()}
	svc := NewService(repo, time.Minute, zerolog.Nop())

	matches := svc.Search(context.Background(), "")

	assert.Empty(t, matches)
	assert.Zero(t, repo.calls)
}

func TestSearchCachesStationList(t *testing.T) {
	repo := &fakeRepository{stations: testStations()}
	svc := NewService(repo, time.Minute, zerolog.Nop())

	svc.Search(context.Background(), "Central")
	svc.Search(context.Background(), "North")

	assert.Equal(t, 1, repo.calls)
}

func TestSearchRefetchesWhenCacheExpired(t *testing.T) {
	repo := &fakeRepository{stations: testStations()}
	svc := NewService(repo, 0, zerolog.Nop())

	svc.Search(context.Background(), "Central")
	svc.Search(context.Background(), "Central")

	assert.Equal(t, 2, repo.calls)
}

func TestSearchRemoteFailureYieldsEmpty(t *testing.T) {
	repo := &fakeRepository{err: errors.New("connection refused")}
	svc := NewService(repo, time.Minute, zerolog.Nop())

	matches := svc.Search(context.Background(), "Central")

	assert.Empty(t, matches)
}

func TestSearchNoMatches(t *testing.T) {
	repo := &fakeRepository{stations: testStations()}
	svc := NewService(repo, time.Minute, zerolog.Nop())

	assert.Empty(t, svc.Search(context.Background(), "Airport"))
}

func TestGetByID(t *testing.T) {
	repo := &fakeRepository{stations: testStations()}
	svc := NewService(repo, time.Minute, zerolog.Nop())

	st, ok := svc.GetByID(context.Background(), "2")
	require.True(t, ok)
	assert.Equal(t, "North Station", st.Name)

	_, ok = svc.GetByID(context.Background(), "99")
	assert.False(t, ok)
}

func TestGetByIDRemoteFailure(t *testing.T) {
	repo := &fakeRepository{err: errors.New("boom")}
	svc := NewService(repo, time.Minute, zerolog.Nop())

	_, ok := svc.GetByID(context.Background(), "1")
	assert.False(t, ok)
}
