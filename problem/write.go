package problem

import (
	"bufio"
	"fmt"
	"io"
)

// Answer strings.
const (
	Yes = "YES"
	No  = "NO"
)

// Format returns Yes or No.
func Format(connected bool) string {
	if connected {
		return Yes
	}

	return No
}

// WriteAnswers writes one "YES"/"NO" line per answer.
func WriteAnswers(w io.Writer, answers []bool) error {
	bw := bufio.NewWriter(w)
	for _, a := range answers {
		if _, err := bw.WriteString(Format(a) + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Encode writes p in the input format accepted by Parse.
func Encode(w io.Writer, p *Problem) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", len(p.Islands), len(p.Queries))
	for _, r := range p.Islands {
		fmt.Fprintln(bw, r.String())
	}
	for _, q := range p.Queries {
		fmt.Fprintf(bw, "%d %d\n", q.Row, q.Col)
	}

	return bw.Flush()
}
