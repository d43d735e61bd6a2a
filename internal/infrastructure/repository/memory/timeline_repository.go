package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/match-ingestion/internal/domain/timeline"
)

// TimelineRepository keeps one timeline per stored match.
type TimelineRepository struct {
	mu        sync.RWMutex
	matches   *MatchRepository
	timelines map[int64]timeline.Timeline
}

func NewTimelineRepository(matches *MatchRepository) *TimelineRepository {
	return &TimelineRepository{
		matches:   matches,
		timelines: make(map[int64]timeline.Timeline),
	}
}

func (r *TimelineRepository) ExistsForMatch(_ context.Context, matchID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.timelines[matchID]
	return ok, nil
}

func (r *TimelineRepository) Create(_ context.Context, matchID int64, item timeline.Timeline) error {
	if err := r.checkMatch(matchID); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.timelines[matchID]; ok {
		return fmt.Errorf("%w: match_id=%d", timeline.ErrAlreadyExists, matchID)
	}
	r.timelines[matchID] = item
	return nil
}

func (r *TimelineRepository) Replace(_ context.Context, matchID int64, item timeline.Timeline) error {
	if err := r.checkMatch(matchID); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.timelines[matchID] = item
	return nil
}

func (r *TimelineRepository) checkMatch(matchID int64) error {
	if r.matches == nil || r.matches.exists(matchID) {
		return nil
	}
	return fmt.Errorf("timeline references unknown match_id=%d", matchID)
}
