//go:build !solution

package linetally

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Mode selects what a repeated line inside one source counts as.
type Mode int

const (
	// Occurrences counts every line read, duplicates included.
	Occurrences Mode = iota
	// Membership counts a line at most once per source.
	Membership
)

func (m Mode) String() string {
	switch m {
	case Occurrences:
		return "occurrences"
	case Membership:
		return "membership"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "occurrences" or "membership". An empty string yields Occurrences.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "occurrences":
		return Occurrences, nil
	case "membership":
		return Membership, nil
	}
	return 0, fmt.Errorf("unknown count mode %q", s)
}

// UnmarshalYAML implements yaml.Unmarshaler
func (m *Mode) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	mode, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Order selects how keys are listed.
type Order int

const (
	// Insertion lists keys in the order they were first seen.
	Insertion Order = iota
	// Lexical lists keys sorted bytewise.
	Lexical
)

func (o Order) String() string {
	switch o {
	case Insertion:
		return "insertion"
	case Lexical:
		return "lexical"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder parses "insertion" or "lexical". An empty string yields Insertion.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "insertion":
		return Insertion, nil
	case "lexical":
		return Lexical, nil
	}
	return 0, fmt.Errorf("unknown order %q", s)
}

// UnmarshalYAML implements yaml.Unmarshaler
func (o *Order) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	order, err := ParseOrder(s)
	if err != nil {
		return err
	}
	*o = order
	return nil
}

// maxLineSize ограничивает длину одной строки при чтении
const maxLineSize = 1024 * 1024

// Tally maps distinct trimmed non-blank lines to the number of times they were counted.
// The zero value is not usable, use New.
type Tally struct {
	mode   Mode
	counts map[string]int
	order  []string // ключи в порядке первого появления
}

func New(mode Mode) *Tally {
	return &Tally{
		mode:   mode,
		counts: make(map[string]int),
	}
}

func (t *Tally) Mode() Mode {
	return t.mode
}

// Add trims line and increments its count. Blank lines are skipped and reported as false.
func (t *Tally) Add(line string) bool {
	key := strings.TrimSpace(line)
	if key == "" {
		return false
	}
	t.inc(key)
	return true
}

func (t *Tally) inc(key string) {
	cnt, ok := t.counts[key]
	if !ok {
		t.order = append(t.order, key)
	}
	t.counts[key] = cnt + 1
}

// Consume reads r line by line and counts every non-blank line.
// It returns the number of lines that changed the tally.
func (t *Tally) Consume(r io.Reader) (int, error) {
	var seen map[string]struct{}
	if t.mode == Membership {
		seen = make(map[string]struct{})
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	counted := 0
	for scanner.Scan() {
		key := strings.TrimSpace(scanner.Text())
		if key == "" {
			continue
		}
		if seen != nil {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
		}
		t.inc(key)
		counted++
	}
	if err := scanner.Err(); err != nil {
		return counted, err
	}
	return counted, nil
}

// Count returns how many times the trimmed line was counted.
func (t *Tally) Count(line string) int {
	return t.counts[strings.TrimSpace(line)]
}

// Len returns the number of distinct keys.
func (t *Tally) Len() int {
	return len(t.counts)
}

// Keys returns every key in the requested order. The result is a fresh slice.
func (t *Tally) Keys(order Order) []string {
	if order == Lexical {
		keys := maps.Keys(t.counts)
		slices.Sort(keys)
		return keys
	}
	return slices.Clone(t.order)
}
