package types

// LinkStatus is the result of processing a single Candidate.
type LinkStatus string

const (
	StatusPlanned              LinkStatus = "planned"
	StatusCreated              LinkStatus = "created"
	StatusSkippedIgnored       LinkStatus = "ignored"
	StatusConflictExistingFile LinkStatus = "conflict_file"
	StatusConflictExistingLink LinkStatus = "conflict_link"
	StatusFailed               LinkStatus = "failed"
)

// AllStatuses lists every status in reporting order.
var AllStatuses = []LinkStatus{
	StatusCreated,
	StatusPlanned,
	StatusSkippedIgnored,
	StatusConflictExistingLink,
	StatusConflictExistingFile,
	StatusFailed,
}

// IsConflict reports whether the status is one of the conflict outcomes.
func (s LinkStatus) IsConflict() bool {
	return s == StatusConflictExistingFile || s == StatusConflictExistingLink
}

// LinkOutcome records what happened to one Candidate.
type LinkOutcome struct {
	Candidate Candidate
	Status    LinkStatus

	// Err is the underlying failure, set only when Status is StatusFailed
	Err error
}

// LinkResult is the ordered outcome list of a run, one entry per candidate.
type LinkResult struct {
	SourcePath string
	DestPath   string
	DryRun     bool
	Outcomes   []LinkOutcome
}

// Add appends an outcome.
func (r *LinkResult) Add(o LinkOutcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// Count returns the number of outcomes with the given status.
func (r *LinkResult) Count(status LinkStatus) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// Counts returns outcome totals keyed by status.
func (r *LinkResult) Counts() map[LinkStatus]int {
	counts := make(map[LinkStatus]int, len(AllStatuses))
	for _, o := range r.Outcomes {
		counts[o.Status]++
	}
	return counts
}

// HasFailures reports whether any link creation failed.
func (r *LinkResult) HasFailures() bool {
	return r.Count(StatusFailed) > 0
}

// Find returns the outcome for the named candidate.
func (r *LinkResult) Find(name string) (LinkOutcome, bool) {
	for _, o := range r.Outcomes {
		if o.Candidate.Name == name {
			return o, true
		}
	}
	return LinkOutcome{}, false
}
