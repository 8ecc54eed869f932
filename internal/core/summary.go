package core

// Aggregation is an insertion-ordered map from category key to totals.
// Keys appear in the order of their first Add.
type Aggregation struct {
	width   int
	index   map[string]int
	entries []CategoryTotals
}

// NewAggregation creates an empty aggregation summing width fields per key.
func NewAggregation(width int) *Aggregation {
	return &Aggregation{
		width: width,
		index: make(map[string]int),
	}
}

// Add folds values into the totals for category. The key is created with
// zero sums on first use. len(values) must equal the aggregation width.
func (a *Aggregation) Add(category string, values []float64) {
	i, ok := a.index[category]
	if !ok {
		i = len(a.entries)
		a.index[category] = i
		a.entries = append(a.entries, CategoryTotals{
			Category: category,
			Totals:   make([]float64, a.width),
		})
	}
	e := &a.entries[i]
	for j := 0; j < a.width && j < len(values); j++ {
		e.Totals[j] += values[j]
	}
	e.Rows++
}

// Get returns the totals for category.
func (a *Aggregation) Get(category string) (CategoryTotals, bool) {
	if a == nil {
		return CategoryTotals{}, false
	}
	i, ok := a.index[category]
	if !ok {
		return CategoryTotals{}, false
	}
	return a.entries[i], true
}

// Len returns the number of distinct categories.
func (a *Aggregation) Len() int {
	if a == nil {
		return 0
	}
	return len(a.entries)
}

// Entries returns a copy of the totals in first-seen order.
func (a *Aggregation) Entries() []CategoryTotals {
	if a == nil {
		return nil
	}
	out := make([]CategoryTotals, len(a.entries))
	for i, e := range a.entries {
		out[i] = CategoryTotals{
			Category: e.Category,
			Totals:   append([]float64(nil), e.Totals...),
			Rows:     e.Rows,
		}
	}
	return out
}

// Categories returns the keys in first-seen order.
func (a *Aggregation) Categories() []string {
	if a == nil {
		return nil
	}
	out := make([]string, len(a.entries))
	for i, e := range a.entries {
		out[i] = e.Category
	}
	return out
}
