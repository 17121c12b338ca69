package usecase

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"feed-composer/port"
	appOtel "feed-composer/utils/otel"
)

// RefreshResult summarizes one refresh run for logging and the HTTP
// surface.
type RefreshResult struct {
	Candidates int
	Sections   int
	Dropped    int
	Skipped    bool
}

// RefreshFeedUsecase is the job entry point: user check, select, rank,
// mix, append — strictly in sequence, one run per user invocation.
type RefreshFeedUsecase struct {
	users     port.UserRepository
	selector  *SelectCandidatesUsecase
	ranker    *RankCandidatesUsecase
	mixer     *MixSectionsUsecase
	feedStore port.FeedStore
	logger    *slog.Logger
}

func NewRefreshFeedUsecase(
	users port.UserRepository,
	selector *SelectCandidatesUsecase,
	ranker *RankCandidatesUsecase,
	mixer *MixSectionsUsecase,
	feedStore port.FeedStore,
	logger *slog.Logger,
) *RefreshFeedUsecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &RefreshFeedUsecase{
		users:     users,
		selector:  selector,
		ranker:    ranker,
		mixer:     mixer,
		feedStore: feedStore,
		logger:    logger,
	}
}

// Execute runs the refresh pipeline for one user. A missing or
// inactive user and an empty candidate set are normal terminal cases
// (logged, no error); collaborator and store failures propagate.
func (u *RefreshFeedUsecase) Execute(ctx context.Context, userID string) (*RefreshResult, error) {
	start := time.Now()

	result, err := u.execute(ctx, userID)
	recordRefreshRun(ctx, result, err, time.Since(start))
	return result, err
}

func (u *RefreshFeedUsecase) execute(ctx context.Context, userID string) (*RefreshResult, error) {
	user, err := u.users.FindActiveUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		u.logger.InfoContext(ctx, "skipping feed refresh, user missing or inactive", "user_id", userID)
		return &RefreshResult{Skipped: true}, nil
	}

	candidates, err := u.selector.Execute(ctx, userID)
	if err != nil {
		return nil, err
	}

	ranked, err := u.ranker.Execute(ctx, userID, candidates)
	if err != nil {
		return nil, err
	}

	if len(ranked) == 0 {
		u.logger.InfoContext(ctx, "no candidates for feed refresh", "user_id", userID)
		return &RefreshResult{Skipped: true}, nil
	}

	mixed := u.mixer.Execute(ranked)
	if len(mixed.Undistributed) > 0 {
		u.logger.WarnContext(ctx, "candidates dropped during mixing",
			"user_id", userID,
			"dropped", len(mixed.Undistributed),
		)
	}

	if len(mixed.Sections) == 0 {
		u.logger.InfoContext(ctx, "no sections produced, nothing to store", "user_id", userID)
		return &RefreshResult{
			Candidates: len(ranked),
			Dropped:    len(mixed.Undistributed),
			Skipped:    true,
		}, nil
	}

	if err := u.feedStore.Append(ctx, userID, mixed.Sections); err != nil {
		return nil, err
	}

	u.logger.InfoContext(ctx, "feed refreshed",
		"user_id", userID,
		"candidates", len(ranked),
		"sections", len(mixed.Sections),
		"dropped", len(mixed.Undistributed),
	)

	return &RefreshResult{
		Candidates: len(ranked),
		Sections:   len(mixed.Sections),
		Dropped:    len(mixed.Undistributed),
	}, nil
}

// recordRefreshRun records the run's metrics when instruments are
// initialized.
func recordRefreshRun(ctx context.Context, result *RefreshResult, err error, duration time.Duration) {
	m := appOtel.Metrics
	if m == nil {
		return
	}

	outcome := "completed"
	switch {
	case err != nil:
		outcome = "error"
		m.ErrorsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "refresh")))
	case result != nil && result.Skipped:
		outcome = "skipped"
	}
	attrs := attribute.String("outcome", outcome)

	m.RefreshRunsTotal.Add(ctx, 1, metric.WithAttributes(attrs))
	m.RefreshDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs))

	if result != nil {
		if result.Sections > 0 {
			m.SectionsWritten.Add(ctx, int64(result.Sections))
		}
		if result.Dropped > 0 {
			m.CandidatesDropped.Add(ctx, int64(result.Dropped))
		}
	}
}
