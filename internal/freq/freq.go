// Package freq counts integer occurrences for frequency-weighted scoring.
package freq

// Table maps a value to the number of times it was seen
type Table map[int]int

// New builds a table from values
func New(values []int) Table {
	t := make(Table, len(values))
	for _, v := range values {
		t[v]++
	}
	return t
}

// Count returns how many times v was seen, zero when absent
func (t Table) Count(v int) int {
	return t[v]
}
