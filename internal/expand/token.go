package expand

// Extract returns the word touching the cursor of s.
// It reports false when s is nil or no word touches the cursor.
func Extract(s Surface) (Span, bool) {
	if s == nil {
		return Span{}, false
	}
	span, ok := s.WordAt(s.Cursor())
	if !ok || span.Text == "" {
		return Span{}, false
	}
	return span, true
}
