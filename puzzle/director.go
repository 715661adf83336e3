package puzzle

// Director plays a session in place of the player, one tile selection at a
// time.
type Director interface {
	// Init binds the director to a freshly started session
	Init(*Session)

	// Act returns the next slot to select, or false when there is nothing
	// left to do
	Act() (int, bool)
}
