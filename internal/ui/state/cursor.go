package state

// MoveUp selects the previous entry. It reports whether the index changed;
// the top of the list does not wrap.
func (s *Selection) MoveUp() bool {
	if s.phase != PhaseSelecting || s.cursor <= 0 {
		return false
	}
	s.cursor--
	return true
}

// MoveDown selects the next entry. It reports whether the index changed;
// the bottom of the list does not wrap.
func (s *Selection) MoveDown() bool {
	if s.phase != PhaseSelecting || s.cursor >= len(s.entries)-1 {
		return false
	}
	s.cursor++
	return true
}
