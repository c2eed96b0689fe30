package report

import "q.log/dualsimplex/simplex"

// Recorder keeps every callback of a solve.
type Recorder struct {
	Initial simplex.Snapshot
	Steps   []simplex.PivotStep
	Outcome simplex.Outcome
	Done    bool
}

func (r *Recorder) Start(s simplex.Snapshot) { r.Initial = s }

func (r *Recorder) Pivot(p simplex.PivotStep) { r.Steps = append(r.Steps, p) }

func (r *Recorder) Finish(o simplex.Outcome) {
	r.Outcome = o
	r.Done = true
}

// Snapshots returns the initial tableau followed by the tableau after each pivot.
func (r *Recorder) Snapshots() []simplex.Snapshot {
	out := []simplex.Snapshot{r.Initial}
	for _, s := range r.Steps {
		out = append(out, s.After)
	}
	return out
}

// Multi forwards every callback to each of its reporters in order.
type Multi []simplex.Reporter

func (m Multi) Start(s simplex.Snapshot) {
	for _, r := range m {
		r.Start(s)
	}
}

func (m Multi) Pivot(p simplex.PivotStep) {
	for _, r := range m {
		r.Pivot(p)
	}
}

func (m Multi) Finish(o simplex.Outcome) {
	for _, r := range m {
		r.Finish(o)
	}
}
