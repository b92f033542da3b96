package problem

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lavaworld/geometry"
)

// maxTokenSize bounds a single token; integers never come close.
const maxTokenSize = 1 << 16

const maxPrealloc = 1 << 16

var coordNames = [4]string{"Ax", "Ay", "Bx", "By"}

// tokens pulls integers from a word scanner.
type tokens struct {
	sc *bufio.Scanner
}

// next returns the next integer token. The bool is false at end of input;
// a non-nil error reports a read failure or a non-integer token.
func (t *tokens) next() (int, bool, error) {
	if !t.sc.Scan() {
		err := t.sc.Err()
		switch {
		case errors.Is(err, bufio.ErrTooLong):
			// a token this long is never an integer
			return 0, true, fmt.Errorf("token longer than %d bytes", maxTokenSize)
		case err != nil:
			return 0, false, fmt.Errorf("%w: %v", ErrRead, err)
		}
		return 0, false, nil
	}
	word := t.sc.Text()
	v, err := strconv.Atoi(word)
	if err != nil {
		return 0, true, fmt.Errorf("token %q is not an integer", word)
	}

	return v, true, nil
}

// field reads one integer and classifies failures under sentinel.
func (t *tokens) field(sentinel error, what string) (int, error) {
	v, ok, err := t.next()
	switch {
	case err != nil && ok:
		return 0, fmt.Errorf("%w: %s: %v", sentinel, what, err)
	case err != nil:
		return 0, err
	case !ok:
		return 0, fmt.Errorf("%w: %s: unexpected end of input", sentinel, what)
	}

	return v, nil
}

// Parse reads a full problem from r.
func Parse(r io.Reader) (*Problem, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxTokenSize)
	sc.Split(bufio.ScanWords)
	t := &tokens{sc: sc}

	n, err := t.field(ErrInvalidCount, "island count")
	if err != nil {
		return nil, err
	}
	q, err := t.field(ErrInvalidCount, "query count")
	if err != nil {
		return nil, err
	}
	if n < 0 || q < 0 {
		return nil, fmt.Errorf("%w: islands=%d queries=%d", ErrInvalidCount, n, q)
	}

	// counts come from the input, so preallocation is capped
	p := &Problem{
		Islands: make([]geometry.Rect, 0, min(n, maxPrealloc)),
		Queries: make([]Query, 0, min(q, maxPrealloc)),
	}
	for id := 1; id <= n; id++ {
		var c [4]int
		for k := range c {
			if c[k], err = t.field(ErrMalformedRectangle, fmt.Sprintf("island %d %s", id, coordNames[k])); err != nil {
				return nil, err
			}
		}
		p.Islands = append(p.Islands, geometry.NewRect(c[0], c[1], c[2], c[3]))
	}
	for i := 1; i <= q; i++ {
		row, err := t.field(ErrMalformedQuery, fmt.Sprintf("query %d row", i))
		if err != nil {
			return nil, err
		}
		col, err := t.field(ErrMalformedQuery, fmt.Sprintf("query %d col", i))
		if err != nil {
			return nil, err
		}
		p.Queries = append(p.Queries, Query{Row: row, Col: col})
	}

	return p, nil
}
