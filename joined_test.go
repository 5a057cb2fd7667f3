package termrender

import (
	"reflect"
	"testing"
)

func TestSequenceJoinerBasic(t *testing.T) {
	j := NewSequenceJoiner("->", "=>")
	line := lineOfString(10, "a->b=>c")

	got := j.JoinedRanges(line)
	expected := []JoinedRange{{Start: 1, End: 3}, {Start: 4, End: 6}}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("JoinedRanges = %+v, want %+v", got, expected)
	}
}

func TestSequenceJoinerLongestMatch(t *testing.T) {
	j := NewSequenceJoiner("=>", "==>")
	line := lineOfString(10, "a==>b")

	got := j.JoinedRanges(line)
	expected := []JoinedRange{{Start: 1, End: 4}}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("JoinedRanges = %+v, want %+v", got, expected)
	}
}

func TestSequenceJoinerNoOverlap(t *testing.T) {
	j := NewSequenceJoiner("--")
	line := lineOfString(10, "---")

	// Greedy left-to-right: the first two dashes join, the third stands
	// alone.
	got := j.JoinedRanges(line)
	expected := []JoinedRange{{Start: 0, End: 2}}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("JoinedRanges = %+v, want %+v", got, expected)
	}
}

func TestSequenceJoinerSkipsWideCells(t *testing.T) {
	j := NewSequenceJoiner("->")
	line := lineOfString(10, "中->")

	got := j.JoinedRanges(line)
	expected := []JoinedRange{{Start: 2, End: 4}}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("JoinedRanges = %+v, want %+v", got, expected)
	}
}

func TestSequenceJoinerIgnoresShortSequences(t *testing.T) {
	j := NewSequenceJoiner("-", "")
	line := lineOfString(5, "-----")

	if got := j.JoinedRanges(line); got != nil {
		t.Errorf("JoinedRanges = %+v, want none for 1-rune sequences", got)
	}
}

func TestJoinedRangeWidth(t *testing.T) {
	r := JoinedRange{Start: 3, End: 6}
	if got := r.Width(); got != 3 {
		t.Errorf("Width() = %d, want 3", got)
	}
}
