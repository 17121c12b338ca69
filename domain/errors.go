package domain

// RepositoryError represents an error from the repository layer.
type RepositoryError struct {
	Op  string
	Err string
}

func (e *RepositoryError) Error() string {
	return e.Op + ": " + e.Err
}

// ScorerError represents an error from the external scoring service.
type ScorerError struct {
	Op  string
	Err string
}

func (e *ScorerError) Error() string {
	return e.Op + ": " + e.Err
}

// FeedStoreError represents an error from the feed store layer.
type FeedStoreError struct {
	Op  string
	Err string
}

func (e *FeedStoreError) Error() string {
	return e.Op + ": " + e.Err
}
