package otel

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds all OTel metric instruments for feed-composer.
var Metrics *FeedComposerMetrics

// FeedComposerMetrics contains all metric instruments.
type FeedComposerMetrics struct {
	RefreshRunsTotal  metric.Int64Counter
	SectionsWritten   metric.Int64Counter
	CandidatesDropped metric.Int64Counter
	ErrorsTotal       metric.Int64Counter
	RefreshDuration   metric.Float64Histogram
	ScoringDuration   metric.Float64Histogram
}

// InitMetrics initializes all metric instruments.
func InitMetrics() error {
	meter := otel.Meter("feed-composer")

	refreshRunsTotal, err := meter.Int64Counter("feed_composer_refresh_runs_total",
		metric.WithDescription("Total number of feed refresh runs"),
	)
	if err != nil {
		return err
	}

	sectionsWritten, err := meter.Int64Counter("feed_composer_sections_written_total",
		metric.WithDescription("Total number of sections appended to feed stores"),
	)
	if err != nil {
		return err
	}

	candidatesDropped, err := meter.Int64Counter("feed_composer_candidates_dropped_total",
		metric.WithDescription("Total number of candidates dropped during mixing"),
	)
	if err != nil {
		return err
	}

	errorsTotal, err := meter.Int64Counter("feed_composer_errors_total",
		metric.WithDescription("Total number of errors"),
	)
	if err != nil {
		return err
	}

	refreshDuration, err := meter.Float64Histogram("feed_composer_refresh_duration_seconds",
		metric.WithDescription("Feed refresh run duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return err
	}

	scoringDuration, err := meter.Float64Histogram("feed_composer_scoring_duration_seconds",
		metric.WithDescription("External scoring call duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return err
	}

	Metrics = &FeedComposerMetrics{
		RefreshRunsTotal:  refreshRunsTotal,
		SectionsWritten:   sectionsWritten,
		CandidatesDropped: candidatesDropped,
		ErrorsTotal:       errorsTotal,
		RefreshDuration:   refreshDuration,
		ScoringDuration:   scoringDuration,
	}

	return nil
}
