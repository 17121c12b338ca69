package usecase

import (
	"sort"

	"feed-composer/domain"
)

const (
	// batchSize is the number of candidates a full batch holds.
	batchSize = 10
	// longSlots is how many leading batch members become single-item
	// "long" sections; the rest collapse into one "quick links" section.
	longSlots = 5
)

// MixResult carries the ordered sections plus the candidates that no
// batch could take, so callers can observe drops instead of losing
// items silently.
type MixResult struct {
	Sections      []domain.Section
	Undistributed []*domain.Candidate
}

// MixSectionsUsecase packs ranked candidates into display sections
// under per-batch diversity constraints, favoring long-form content for
// the single-item slots. Pure in-memory computation, no suspension.
type MixSectionsUsecase struct{}

func NewMixSectionsUsecase() *MixSectionsUsecase {
	return &MixSectionsUsecase{}
}

// Execute expects candidates already in ascending score order. It
// allocates floor(N/10) batches, distributes long-form candidates
// first and short-form second with a greedy first-fit, then emits up
// to five "long" sections and one "quick links" section per batch.
func (u *MixSectionsUsecase) Execute(candidates []*domain.Candidate) MixResult {
	numBatches := len(candidates) / batchSize
	if numBatches == 0 {
		return MixResult{Undistributed: candidates}
	}

	median := medianWordCount(candidates)

	var long, short []*domain.Candidate
	for _, candidate := range candidates {
		if candidate.WordCount < median {
			short = append(short, candidate)
		} else {
			long = append(long, candidate)
		}
	}

	batches := make([][]*domain.Candidate, numBatches)
	var undistributed []*domain.Candidate

	for _, candidate := range append(long, short...) {
		if !place(batches, candidate) {
			undistributed = append(undistributed, candidate)
		}
	}

	var sections []domain.Section
	for _, batch := range batches {
		sections = append(sections, emitSections(batch)...)
	}

	return MixResult{Sections: sections, Undistributed: undistributed}
}

// medianWordCount returns the middle element of the sorted word-count
// sequence; for even-length input, the lower-middle element (not an
// averaged median).
func medianWordCount(candidates []*domain.Candidate) int {
	counts := make([]int, len(candidates))
	for i, candidate := range candidates {
		counts[i] = candidate.WordCount
	}
	sort.Ints(counts)
	return counts[(len(counts)-1)/2]
}

// place tries a strict first-fit (capacity longSlots, diversity
// enforced), then a relaxed capacity-only pass up to batchSize as the
// overflow path.
func place(batches [][]*domain.Candidate, candidate *domain.Candidate) bool {
	for i, batch := range batches {
		if len(batch) < longSlots && diversityOK(batch, candidate) {
			batches[i] = append(batch, candidate)
			return true
		}
	}

	for i, batch := range batches {
		if len(batch) < batchSize {
			batches[i] = append(batch, candidate)
			return true
		}
	}

	return false
}

// diversityOK checks a candidate against a batch's existing members:
// no other item may share its title, and at most one other item may
// share its author, site name, or subscription name. Empty author,
// site, and subscription values never count as shared.
func diversityOK(batch []*domain.Candidate, candidate *domain.Candidate) bool {
	var sameTitle, sameAuthor, sameSite, sameSubscription int

	for _, member := range batch {
		if member.Title == candidate.Title {
			sameTitle++
		}
		if candidate.Author != "" && member.Author == candidate.Author {
			sameAuthor++
		}
		if candidate.SiteName != "" && member.SiteName == candidate.SiteName {
			sameSite++
		}
		if candidate.Subscription != nil && member.Subscription != nil &&
			candidate.Subscription.Name != "" &&
			member.Subscription.Name == candidate.Subscription.Name {
			sameSubscription++
		}
	}

	return sameTitle == 0 && sameAuthor <= 1 && sameSite <= 1 && sameSubscription <= 1
}

// emitSections turns one batch into its section sequence: a single-item
// "long" section per member in the first longSlots positions, then one
// "quick links" section wrapping whatever remains.
func emitSections(batch []*domain.Candidate) []domain.Section {
	if len(batch) == 0 {
		return nil
	}

	longCount := len(batch)
	if longCount > longSlots {
		longCount = longSlots
	}

	sections := make([]domain.Section, 0, longCount+1)
	for _, candidate := range batch[:longCount] {
		sections = append(sections, domain.NewLongSection(domain.ItemRef(candidate)))
	}

	if len(batch) > longSlots {
		items := make([]domain.SectionItem, 0, len(batch)-longSlots)
		for _, candidate := range batch[longSlots:] {
			items = append(items, domain.ItemRef(candidate))
		}
		section, err := domain.NewQuickLinksSection(items)
		if err == nil {
			sections = append(sections, section)
		}
	}

	return sections
}
