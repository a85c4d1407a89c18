package scale

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const ruleWidth = 80

// FormatAlpha renders alpha the way it is echoed back in reports and cache keys.
func FormatAlpha(alpha float64) string {
	return strconv.FormatFloat(alpha, 'g', -1, 64)
}

// WriteReport prints the top entries of r, the rank of the first major scale
// type and the number of unique scale types.
func WriteReport(w io.Writer, alpha float64, r Ranking, top int) error {
	bw := bufio.NewWriter(w)
	a := FormatAlpha(alpha)
	rule := strings.Repeat("=", ruleWidth)

	fmt.Fprintf(bw, "\n%s\nALPHA = %s\n%s\n\n", rule, a, rule)
	fmt.Fprintf(bw, "Top %d unique scale types (alpha=%s):\n\n", top, a)
	fmt.Fprintf(bw, "%-6s %-12s %-8s Interval Pattern\n", "Rank", "Magnitude", "#Notes")
	fmt.Fprintln(bw, strings.Repeat("-", ruleWidth))

	for _, row := range r.Rows(top) {
		marker := ""
		if row.Major {
			marker = " ★"
		}
		fmt.Fprintf(bw, "%-6d %-12.4f %-8d [%s]%s\n", row.Rank, row.Magnitude, row.Cardinality, row.Pattern, marker)
	}

	if rank, ok := r.FirstMajorRank(); ok {
		fmt.Fprintf(bw, "\nFirst major scale: Rank %d\n", rank)
		fmt.Fprintf(bw, "Total unique scale types: %d\n", len(r))
	}
	return bw.Flush()
}
