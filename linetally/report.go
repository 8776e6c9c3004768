//go:build !solution

package linetally

import (
	"bufio"
	"fmt"
	"io"
)

// Section is one labelled group of the report.
// A key belongs to the section when Min <= count and, if Max is non-zero, count <= Max.
type Section struct {
	Label int
	Min   int
	Max   int
}

// DefaultSections prints lines seen at least 5 times, then exactly 4, 3 and 2 times.
var DefaultSections = []Section{
	{Label: 5, Min: 5},
	{Label: 4, Min: 4, Max: 4},
	{Label: 3, Min: 3, Max: 3},
	{Label: 2, Min: 2, Max: 2},
}

func (s Section) Contains(n int) bool {
	if n < s.Min {
		return false
	}
	return s.Max == 0 || n <= s.Max
}

func (s Section) Header() string {
	return fmt.Sprintf("#### %d ####", s.Label)
}

// Section returns the keys whose count falls inside s.
func (t *Tally) Section(s Section, order Order) []string {
	var res []string
	for _, key := range t.Keys(order) {
		if s.Contains(t.counts[key]) {
			res = append(res, key)
		}
	}
	return res
}

// WriteReport writes every section header followed by its keys, one per line.
// Headers are written even for empty sections.
func WriteReport(w io.Writer, t *Tally, sections []Section, order Order) error {
	bw := bufio.NewWriter(w)
	keys := t.Keys(order)
	for _, s := range sections {
		if _, err := fmt.Fprintln(bw, s.Header()); err != nil {
			return err
		}
		for _, key := range keys {
			if !s.Contains(t.counts[key]) {
				continue
			}
			if _, err := fmt.Fprintln(bw, key); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
