package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zerosofts/nameit/internal/errors"
)

// ParseRange parses a range expression over a list of size n and returns the
// set of 1-based indices to keep.
//
// Grammar: "a-b" keeps [a,b] inclusive, "-b" keeps [1,b], "a-" keeps [a,n],
// a bare "a" keeps that single index, and comma-separated terms union.
// Empty input returns a nil set, meaning "no change".
func ParseRange(expr string, n int) (map[int]bool, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}

	keep := make(map[int]bool)
	for _, term := range strings.Split(expr, ",") {
		term = strings.TrimSpace(term)
		if term == "" {
			return nil, errors.InvalidRangeError(expr)
		}
		start, end, err := parseTerm(term, n)
		if err != nil {
			return nil, errors.InvalidRangeError(expr).WithDetails(err.Error())
		}
		for i := start; i <= end && i <= n; i++ {
			keep[i] = true
		}
	}
	return keep, nil
}

func parseTerm(term string, n int) (int, int, error) {
	if term == "-" {
		return 0, 0, fmt.Errorf("a range needs at least one bound")
	}
	dash := strings.IndexByte(term, '-')
	if dash < 0 {
		i, err := strconv.Atoi(term)
		if err != nil {
			return 0, 0, fmt.Errorf("%q is not a number", term)
		}
		if i < 1 {
			return 0, 0, fmt.Errorf("index %d is out of range", i)
		}
		return i, i, nil
	}

	start, end := 1, n
	if s := term[:dash]; s != "" {
		i, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, fmt.Errorf("%q is not a number", s)
		}
		start = i
	}
	if s := term[dash+1:]; s != "" {
		i, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, fmt.Errorf("%q is not a number", s)
		}
		end = i
	}
	if start < 1 {
		return 0, 0, fmt.Errorf("index %d is out of range", start)
	}
	if start > end {
		return 0, 0, fmt.Errorf("range %d-%d is inverted", start, end)
	}
	return start, end, nil
}
