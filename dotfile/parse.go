// Package dotfile reads location graphs written as a DOT-style edge list:
//
//	digraph campus {
//	    // walking minutes
//	    "Union South" -> "Computer Sciences and Statistics" [label="1.0"];
//	}
//
// Every line that contains both "->" and "label=" is an edge. Blank lines,
// "//" comments, the "digraph" header and the closing brace are skipped, and
// any other line is ignored. The label value keeps only its digits and
// decimal points before it is parsed, so `[label="2.5 min"];` weighs 2.5.
package dotfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedWeight indicates an edge label that is not a number once
// stripped to digits and '.'.
var ErrMalformedWeight = errors.New("dotfile: malformed edge weight")

// ErrMalformedEdge indicates an edge line with an empty endpoint.
var ErrMalformedEdge = errors.New("dotfile: malformed edge")

// ErrNilGraph is returned by LoadInto for a nil target graph.
var ErrNilGraph = errors.New("dotfile: graph is nil")

// ParseError reports the line at which reading stopped.
type ParseError struct {
	Line int    // 1-based
	Text string // trimmed line content
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dotfile: line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Triple is one parsed edge.
type Triple struct {
	From   string
	To     string
	Weight float64
}

// Parse reads every edge from r. It stops at the first malformed edge and
// returns a *ParseError; no partial result is returned with an error.
func Parse(r io.Reader) ([]Triple, error) {
	var out []Triple
	err := scan(r, func(t Triple) error {
		out = append(out, t)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// scan calls fn for every edge in r, in file order.
func scan(r io.Reader, fn func(Triple) error) error {
	sc := bufio.NewScanner(r)
	var n int
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if skip(line) {
			continue
		}
		t, ok, err := parseEdge(line)
		if err != nil {
			return &ParseError{Line: n, Text: line, Err: err}
		}
		if !ok {
			continue
		}
		if err = fn(t); err != nil {
			return &ParseError{Line: n, Text: line, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("dotfile: read: %w", err)
	}

	return nil
}

func skip(line string) bool {
	return line == "" ||
		strings.HasPrefix(line, "//") ||
		strings.Contains(line, "digraph") ||
		line == "}"
}

// parseEdge splits `FROM -> TO [label="W"];`. ok is false for lines that
// are not edges.
func parseEdge(line string) (t Triple, ok bool, err error) {
	if !strings.Contains(line, "->") || !strings.Contains(line, "label=") {
		return Triple{}, false, nil
	}

	from, rest, _ := strings.Cut(line, "->")
	to, attrs, found := strings.Cut(rest, "[")
	if !found {
		return Triple{}, false, fmt.Errorf("%w: missing attribute list", ErrMalformedEdge)
	}
	t.From = unquote(from)
	t.To = unquote(to)
	if t.From == "" || t.To == "" {
		return Triple{}, false, fmt.Errorf("%w: empty endpoint", ErrMalformedEdge)
	}

	_, label, _ := strings.Cut(attrs, "label=")
	digits := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, label)
	t.Weight, err = strconv.ParseFloat(digits, 64)
	if err != nil {
		return Triple{}, false, fmt.Errorf("%w: %q", ErrMalformedWeight, label)
	}

	return t, true, nil
}

// unquote trims spaces and one pair of surrounding double quotes.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	return s
}
