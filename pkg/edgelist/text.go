package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/cyclecheck/pkg/errors"
)

// maxLineLength caps a single line of text input.
const maxLineLength = 1 << 20

// textSeparators are the characters allowed between numbers besides
// whitespace. '-' is only a separator when it does not start a number.
const textSeparators = ",;(){}[]<>=-"

func readText(r io.Reader) (*List, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	var ids []int64
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		tokens, err := tokenize(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		for _, tok := range tokens {
			id, err := errors.ParseVertexID(tok)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			ids = append(ids, id)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read text")
	}
	if len(ids)%2 != 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "odd number of vertex ids (%d): every edge needs two endpoints", len(ids))
	}

	l := &List{Edges: make([]Edge, 0, len(ids)/2)}
	for i := 0; i < len(ids); i += 2 {
		l.Edges = append(l.Edges, Edge{Source: ids[i], Destination: ids[i+1]})
	}
	return l, nil
}

// tokenize splits a line into integer tokens. A '-' directly followed by a
// digit and not preceded by a digit or another '-' is a sign; any other '-'
// separates, so "0-4", "0 -- 4" and "0 -> 4" all read as 0 and 4.
func tokenize(s string) ([]string, error) {
	var tokens []string
	isDigit := func(i int) bool { return i < len(s) && s[i] >= '0' && s[i] <= '9' }

	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case isDigit(i), c == '-' && isDigit(i+1) && (i == 0 || !isDigit(i-1) && s[i-1] != '-'):
			start := i
			i++
			for isDigit(i) {
				i++
			}
			tokens = append(tokens, s[start:i])
		case c == ' ' || c == '\t' || c == '\r' || strings.IndexByte(textSeparators, c) >= 0:
			i++
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unexpected character %q at column %d", rune(c), i+1)
		}
	}
	return tokens, nil
}

// WriteText writes edges in the text format, one "source destination" pair
// per line, so the output can be read back with [FormatText].
func WriteText(w io.Writer, l *List) error {
	bw := bufio.NewWriter(w)
	if l.Name != "" {
		fmt.Fprintf(bw, "# %s\n", l.Name)
	}
	for _, e := range l.Edges {
		fmt.Fprintf(bw, "%d %d\n", e.Source, e.Destination)
	}
	return bw.Flush()
}
