package ingest

import "fmt"

type Status string

const (
	StatusOk      Status = "ok"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// RecordResult is the outcome of processing one record from one
// source. Failures carry a reason instead of being swallowed.
type RecordResult struct {
	Source string
	Key    string
	Status Status
	Reason string
}

func ok(source, key string) RecordResult {
	return RecordResult{Source: source, Key: key, Status: StatusOk}
}

func skipped(source, key, reason string) RecordResult {
	return RecordResult{Source: source, Key: key, Status: StatusSkipped, Reason: reason}
}

func failed(source, key string, err error) RecordResult {
	return RecordResult{Source: source, Key: key, Status: StatusFailed, Reason: err.Error()}
}

// Summary aggregates per-record outcomes across an ingest run. Only
// non-ok results are retained individually.
type Summary struct {
	Ok      int
	Skipped int
	Failed  int
	// skipped and failed records, in processing order
	Issues []RecordResult
}

func (s *Summary) Add(r RecordResult) {
	switch r.Status {
	case StatusOk:
		s.Ok++
	case StatusSkipped:
		s.Skipped++
		s.Issues = append(s.Issues, r)
	case StatusFailed:
		s.Failed++
		s.Issues = append(s.Issues, r)
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("%d ok, %d skipped, %d failed", s.Ok, s.Skipped, s.Failed)
}
