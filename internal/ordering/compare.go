package ordering

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"tasklist-widget/internal/model"
)

// Comparator orders two tasks for the given direction. It returns a negative
// number when a goes first, positive when b goes first, zero to keep order.
type Comparator func(a, b model.Task, dir model.SortDirection) int

// leadingFloat matches the decimal prefix a label is read as.
var leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseLabel reads the leading decimal number of a label ("10 apples" is 10).
// ok is false when there is no number or it is not finite.
func ParseLabel(label string) (v float64, ok bool) {
	m := leadingFloat.FindString(strings.TrimLeft(label, " \t\n\r\v\f"))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// NumericComparator compares labels by numeric value. Labels without a
// number sort after every numeric label in both directions.
func NumericComparator(a, b model.Task, dir model.SortDirection) int {
	numA, okA := ParseLabel(a.Label)
	numB, okB := ParseLabel(b.Label)

	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return 1
	case !okB:
		return -1
	}

	diff := numA - numB
	if dir == model.SortDescending {
		diff = numB - numA
	}
	switch {
	case diff < 0:
		return -1
	case diff > 0:
		return 1
	}
	return 0
}
