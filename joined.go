package termrender

// JoinedRange marks columns [Start, End) rendered as one shaped unit
// (a ligature-like join). Ranges handed to the renderer must be sorted,
// non-overlapping and in increasing column order; the renderer walks
// them with a monotonic index and never revisits a consumed range.
type JoinedRange struct {
	Start int
	End   int
}

// Width returns the covered span in columns.
func (r JoinedRange) Width() int {
	return r.End - r.Start
}

// Joiner produces the joined ranges for a row.
type Joiner interface {
	JoinedRanges(line Line) []JoinedRange
}

// SequenceJoiner joins configured character sequences (programming
// ligatures such as "->", "=>" or "!=") into single render units. Only
// single-width cells participate; the longest match at a column wins.
type SequenceJoiner struct {
	sequences [][]rune
}

// NewSequenceJoiner creates a joiner for the given sequences. Sequences
// shorter than two characters are ignored.
func NewSequenceJoiner(sequences ...string) *SequenceJoiner {
	j := &SequenceJoiner{}
	for _, s := range sequences {
		runes := []rune(s)
		if len(runes) >= 2 {
			j.sequences = append(j.sequences, runes)
		}
	}
	return j
}

// JoinedRanges scans the line and returns the matched ranges in
// increasing column order.
func (j *SequenceJoiner) JoinedRanges(line Line) []JoinedRange {
	var ranges []JoinedRange
	n := line.Len()
	for col := 0; col < n; {
		matched := 0
		for _, seq := range j.sequences {
			if j.matchAt(line, col, n, seq) && len(seq) > matched {
				matched = len(seq)
			}
		}
		if matched > 0 {
			ranges = append(ranges, JoinedRange{Start: col, End: col + matched})
			col += matched
			continue
		}
		col++
	}
	return ranges
}

func (j *SequenceJoiner) matchAt(line Line, col, length int, seq []rune) bool {
	if col+len(seq) > length {
		return false
	}
	var cell Cell
	for i, r := range seq {
		line.LoadCell(col+i, &cell)
		if cell.Width != 1 || cell.Char != string(r) {
			return false
		}
	}
	return true
}

var _ Joiner = (*SequenceJoiner)(nil)
