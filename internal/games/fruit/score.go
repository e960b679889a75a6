package fruit

import "strconv"

// Score is the running total. It has no floor or ceiling.
type Score struct {
	value int
	text  string
}

// NewScore creates a score at zero.
func NewScore() *Score {
	s := &Score{}
	s.render()
	return s
}

// Add applies delta and refreshes the display text.
func (s *Score) Add(delta int) {
	s.value += delta
	s.render()
}

// Value returns the current total.
func (s *Score) Value() int {
	return s.value
}

// Text returns the display text, e.g. "Score: 40".
func (s *Score) Text() string {
	return s.text
}

func (s *Score) render() {
	s.text = "Score: " + strconv.Itoa(s.value)
}
