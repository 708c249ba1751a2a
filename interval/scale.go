package interval

import (
	"bytes"
	"sort"
)

// Scale is an ordered and mutable sequence of intervals. The order is the order
// in which the degrees were added and is preserved on export.
type Scale struct {
	intervals []*Interval
}

func NewScale(intervals ...*Interval) *Scale {
	s := &Scale{make([]*Interval, 0, len(intervals)+8)}
	s.intervals = append(s.intervals, intervals...)
	return s
}

func (s *Scale) Append(ivs ...*Interval) {
	s.intervals = append(s.intervals, ivs...)
}

func (s *Scale) Len() int {
	return len(s.intervals)
}

func (s *Scale) At(i int) *Interval {
	return s.intervals[i]
}

// Last returns the last interval and true or nil and false if the scale is empty
func (s *Scale) Last() (*Interval, bool) {
	if len(s.intervals) == 0 {
		return nil, false
	}
	return s.intervals[len(s.intervals)-1], true
}

// SetLast replaces the last interval. It returns false if the scale is empty.
func (s *Scale) SetLast(iv *Interval) bool {
	if len(s.intervals) == 0 {
		return false
	}
	s.intervals[len(s.intervals)-1] = iv
	return true
}

// Snapshot returns a copy of the current sequence of intervals
func (s *Scale) Snapshot() []*Interval {
	cp := make([]*Interval, len(s.intervals))
	copy(cp, s.intervals)
	return cp
}

// Sort orders the scale by ascending size. The sort is stable so degrees of
// equal size keep their relative order. Intervals that cannot be compared make
// the sort fail without touching the scale.
func (s *Scale) Sort() error {
	cp := s.Snapshot()
	var err error
	sort.SliceStable(cp, func(i, j int) bool {
		if err != nil {
			return false
		}
		var c int
		c, err = cp[i].Compare(cp[j])
		return c < 0
	})
	if err != nil {
		return err
	}
	s.intervals = cp
	return nil
}

func (s *Scale) Reverse() {
	for i, j := 0, len(s.intervals)-1; i < j; i, j = i+1, j-1 {
		s.intervals[i], s.intervals[j] = s.intervals[j], s.intervals[i]
	}
}

func (s *Scale) Clear() {
	s.intervals = s.intervals[:0]
}

func (s *Scale) String() string {
	b := bytes.NewBufferString(`[`)
	for i, iv := range s.intervals {
		if i > 0 {
			b.WriteString(`, `)
		}
		b.WriteString(iv.String())
	}
	b.WriteByte(']')
	return b.String()
}
