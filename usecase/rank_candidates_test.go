package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feed-composer/domain"
)

func scoredCandidate(id string, score float64) *domain.Candidate {
	return &domain.Candidate{ID: id, Title: id, Source: domain.SourcePrivate, WordCount: 100, Score: &score}
}

func unscoredCandidate(id string) *domain.Candidate {
	return &domain.Candidate{ID: id, Title: id, Source: domain.SourcePrivate, WordCount: 100}
}

func TestRankCandidatesUsecase_SkipsSmallFeeds(t *testing.T) {
	scorer := &mockScorer{}
	u := NewRankCandidatesUsecase(scorer)

	candidates := make([]*domain.Candidate, 0, 10)
	for i := 0; i < 10; i++ {
		candidates = append(candidates, unscoredCandidate(fmt.Sprintf("c-%d", i)))
	}

	ranked, err := u.Execute(context.Background(), "user-1", candidates)
	require.NoError(t, err)

	// Identity: same slice, same order, no scoring call.
	assert.Equal(t, candidates, ranked)
	assert.Zero(t, scorer.calls)
}

func TestRankCandidatesUsecase_SortsAscendingByScore(t *testing.T) {
	scorer := &mockScorer{scores: map[string]float64{}}
	candidates := make([]*domain.Candidate, 0, 12)
	for i := 0; i < 12; i++ {
		id := fmt.Sprintf("c-%d", i)
		candidates = append(candidates, unscoredCandidate(id))
		scorer.scores[id] = float64(12 - i) // reverse the input order
	}

	u := NewRankCandidatesUsecase(scorer)
	ranked, err := u.Execute(context.Background(), "user-1", candidates)
	require.NoError(t, err)
	require.Len(t, ranked, 12)

	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, scorer.scores[ranked[i-1].ID], scorer.scores[ranked[i].ID])
	}
	assert.Equal(t, "c-11", ranked[0].ID)
	assert.Equal(t, "c-0", ranked[11].ID)

	// Input order untouched.
	assert.Equal(t, "c-0", candidates[0].ID)
}

func TestRankCandidatesUsecase_PrecomputedScoresNotRescored(t *testing.T) {
	scorer := &mockScorer{scores: map[string]float64{}}
	candidates := make([]*domain.Candidate, 0, 12)
	for i := 0; i < 6; i++ {
		candidates = append(candidates, scoredCandidate(fmt.Sprintf("pre-%d", i), float64(i)))
	}
	for i := 0; i < 6; i++ {
		id := fmt.Sprintf("new-%d", i)
		candidates = append(candidates, unscoredCandidate(id))
		scorer.scores[id] = 100 + float64(i)
	}

	u := NewRankCandidatesUsecase(scorer)
	ranked, err := u.Execute(context.Background(), "user-1", candidates)
	require.NoError(t, err)

	require.Equal(t, 1, scorer.calls)
	for id := range scorer.lastItems {
		assert.NotContains(t, id, "pre-", "precomputed candidates must not be sent to the scorer")
	}
	assert.Len(t, scorer.lastItems, 6)

	// Precomputed (0..5) sort below fresh (100..105).
	for i := 0; i < 6; i++ {
		assert.Equal(t, fmt.Sprintf("pre-%d", i), ranked[i].ID)
	}
}

func TestRankCandidatesUsecase_MissingScoreTreatedAsZero(t *testing.T) {
	scorer := &mockScorer{scores: map[string]float64{}}
	candidates := make([]*domain.Candidate, 0, 11)
	for i := 0; i < 10; i++ {
		id := fmt.Sprintf("c-%d", i)
		candidates = append(candidates, unscoredCandidate(id))
		scorer.scores[id] = float64(i + 1)
	}
	// The scorer returns nothing for this one.
	candidates = append(candidates, unscoredCandidate("unscored"))

	u := NewRankCandidatesUsecase(scorer)
	ranked, err := u.Execute(context.Background(), "user-1", candidates)
	require.NoError(t, err)
	assert.Equal(t, "unscored", ranked[0].ID)
}

func TestRankCandidatesUsecase_ScoringFailurePropagates(t *testing.T) {
	scoringErr := errors.New("scorer unavailable")
	scorer := &mockScorer{err: scoringErr}

	candidates := make([]*domain.Candidate, 0, 11)
	for i := 0; i < 11; i++ {
		candidates = append(candidates, unscoredCandidate(fmt.Sprintf("c-%d", i)))
	}

	u := NewRankCandidatesUsecase(scorer)
	_, err := u.Execute(context.Background(), "user-1", candidates)
	assert.ErrorIs(t, err, scoringErr)
}

func TestRankCandidatesUsecase_AllPrecomputedSkipsScorer(t *testing.T) {
	scorer := &mockScorer{}
	candidates := make([]*domain.Candidate, 0, 11)
	for i := 0; i < 11; i++ {
		candidates = append(candidates, scoredCandidate(fmt.Sprintf("c-%d", i), float64(11-i)))
	}

	u := NewRankCandidatesUsecase(scorer)
	ranked, err := u.Execute(context.Background(), "user-1", candidates)
	require.NoError(t, err)
	assert.Zero(t, scorer.calls)
	assert.Equal(t, "c-10", ranked[0].ID)
}
