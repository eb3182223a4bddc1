package summary

// Category groups raw TRX outcome strings for the summary columns.
// Outcomes are an open set; anything unrecognised is Other.
type Category int

const (
	Passed Category = iota
	Failed
	Skipped
	Other
)

// String returns the lowercase category name, also used as CSS class.
func (c Category) String() string {
	switch c {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case Skipped:
		return "skipped"
	default:
		return "other"
	}
}

var outcomeCategories = map[string]Category{
	"Passed":              Passed,
	"PassedButRunAborted": Passed,
	"Warning":             Passed,
	"Completed":           Passed,
	"Failed":              Failed,
	"Error":               Failed,
	"Timeout":             Failed,
	"Aborted":             Failed,
	"NotExecuted":         Skipped,
	"Skipped":             Skipped,
	"NotRunnable":         Skipped,
	"Inconclusive":        Skipped,
	"Pending":             Skipped,
}

// Categorize maps a raw outcome to its category.
func Categorize(outcome string) Category {
	if cat, ok := outcomeCategories[outcome]; ok {
		return cat
	}
	return Other
}

// Counts holds per-category result counts.
type Counts struct {
	Passed  int
	Failed  int
	Skipped int
	Other   int
	Total   int
}

// Add adds another Counts to this one.
func (c *Counts) Add(other *Counts) {
	if other == nil {
		return
	}
	c.Passed += other.Passed
	c.Failed += other.Failed
	c.Skipped += other.Skipped
	c.Other += other.Other
	c.Total += other.Total
}

func (c *Counts) add(cat Category, n int) {
	switch cat {
	case Passed:
		c.Passed += n
	case Failed:
		c.Failed += n
	case Skipped:
		c.Skipped += n
	default:
		c.Other += n
	}
	c.Total += n
}
