package equalheight

// MarkDirty signals that member heights need to be applied on the next
// render pass. Called automatically by State.Set().
func (s *Scope) MarkDirty() {
	s.dirty.Store(true)
}

// checkAndClearDirty returns true if dirty and clears the flag.
func (s *Scope) checkAndClearDirty() bool {
	return s.dirty.Swap(false)
}
