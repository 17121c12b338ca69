package usecase

import (
	"context"
	"sort"
	"time"

	"feed-composer/domain"
	"feed-composer/port"
	appOtel "feed-composer/utils/otel"
)

// rankSkipThreshold is the feed size at or below which ranking is not
// worth the external scoring call; such feeds pass through unchanged.
const rankSkipThreshold = 10

// RankCandidatesUsecase orders candidates by relevance score, reusing
// precomputed scores and fetching the rest in one scoring call.
type RankCandidatesUsecase struct {
	scorer port.Scorer
}

func NewRankCandidatesUsecase(scorer port.Scorer) *RankCandidatesUsecase {
	return &RankCandidatesUsecase{scorer: scorer}
}

// Execute returns the candidates in ascending score order (lowest
// first). Inputs of rankSkipThreshold or fewer come back unchanged. A
// failed scoring call fails outward; no fallback ranking is attempted.
func (u *RankCandidatesUsecase) Execute(ctx context.Context, userID string, candidates []*domain.Candidate) ([]*domain.Candidate, error) {
	if len(candidates) <= rankSkipThreshold {
		return candidates, nil
	}

	unscored := make(map[string]domain.FeatureBundle)
	scores := make(map[string]float64, len(candidates))
	for _, candidate := range candidates {
		if candidate.HasScore() {
			scores[candidate.ID] = *candidate.Score
			continue
		}
		unscored[candidate.ID] = candidate.Features()
	}

	if len(unscored) > 0 {
		scoringStart := time.Now()
		fetched, err := u.scorer.ScoreItems(ctx, userID, unscored)
		if m := appOtel.Metrics; m != nil {
			m.ScoringDuration.Record(ctx, time.Since(scoringStart).Seconds())
		}
		if err != nil {
			return nil, err
		}
		// Disjoint by construction: fetched IDs are exactly the ones
		// without a precomputed score.
		for id, score := range fetched {
			scores[id] = score
		}
	}

	ranked := make([]*domain.Candidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i].ID] < scores[ranked[j].ID]
	})

	return ranked, nil
}
