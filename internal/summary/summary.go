// Package summary aggregates decoded TRX results per test suite.
package summary

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/AleksandrSmirnovB2T/CICD/internal/trx"
)

// Suite accumulates the results of one test suite (class).
type Suite struct {
	Name string

	// Outcomes counts results per raw outcome string.
	Outcomes map[string]int

	// Duration is the sum of the suite's result durations in seconds.
	Duration float64
}

// Total returns the number of results in the suite.
func (s *Suite) Total() int {
	total := 0
	for _, n := range s.Outcomes {
		total += n
	}
	return total
}

// Count returns the number of results whose outcome falls in cat.
func (s *Suite) Count(cat Category) int {
	n := 0
	for outcome, count := range s.Outcomes {
		if Categorize(outcome) == cat {
			n += count
		}
	}
	return n
}

// Counts returns the suite's per-category counts.
func (s *Suite) Counts() Counts {
	var c Counts
	for outcome, n := range s.Outcomes {
		c.add(Categorize(outcome), n)
	}
	return c
}

// Detail is one result flattened with its suite, in document order.
type Detail struct {
	Suite    string
	Test     string
	Outcome  string
	Duration float64
	Message  string
}

// Category returns the outcome category of the detail.
func (d Detail) Category() Category {
	return Categorize(d.Outcome)
}

// Summary holds the suites in order of first appearance and every result
// as a Detail.
type Summary struct {
	suites  *orderedmap.OrderedMap[string, *Suite]
	Details []Detail
}

// Aggregate builds a Summary from a decoded run.
func Aggregate(run *trx.Run) *Summary {
	return New(run.Results, run.SuiteIndex())
}

// New joins results to their suites through index (test identifier to
// suite name) and accumulates them. Results with no entry in index are
// assigned to trx.UnknownSuite. Every result yields exactly one Detail.
func New(results []trx.TestResult, index map[string]string) *Summary {
	s := &Summary{
		suites:  orderedmap.New[string, *Suite](),
		Details: make([]Detail, 0, len(results)),
	}

	for _, r := range results {
		name, ok := index[r.TestID]
		if !ok {
			name = trx.UnknownSuite
		}

		suite, ok := s.suites.Get(name)
		if !ok {
			suite = &Suite{Name: name, Outcomes: make(map[string]int)}
			s.suites.Set(name, suite)
		}
		suite.Outcomes[r.Outcome]++
		suite.Duration += r.Duration

		s.Details = append(s.Details, Detail{
			Suite:    name,
			Test:     r.Name,
			Outcome:  r.Outcome,
			Duration: r.Duration,
			Message:  r.Message,
		})
	}

	return s
}

// Suites returns the suites in order of first appearance.
func (s *Summary) Suites() []*Suite {
	if s.suites == nil {
		return nil
	}
	suites := make([]*Suite, 0, s.suites.Len())
	for pair := s.suites.Oldest(); pair != nil; pair = pair.Next() {
		suites = append(suites, pair.Value)
	}
	return suites
}

// Suite looks up a suite by name.
func (s *Summary) Suite(name string) (*Suite, bool) {
	if s.suites == nil {
		return nil, false
	}
	return s.suites.Get(name)
}

// Totals returns the per-category counts across all suites.
func (s *Summary) Totals() Counts {
	var total Counts
	for _, suite := range s.Suites() {
		c := suite.Counts()
		total.Add(&c)
	}
	return total
}

// Duration returns the summed duration of all suites in seconds.
func (s *Summary) Duration() float64 {
	var d float64
	for _, suite := range s.Suites() {
		d += suite.Duration
	}
	return d
}

// FailedDetails returns the details whose outcome is in the failed category.
func (s *Summary) FailedDetails() []Detail {
	var failed []Detail
	for _, d := range s.Details {
		if d.Category() == Failed {
			failed = append(failed, d)
		}
	}
	return failed
}
