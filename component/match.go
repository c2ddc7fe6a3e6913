package component

// Match holds the rule and flag state that input commands toggle
type Match struct {
	// WinTarget is the score that ends a match, always >= 1
	WinTarget int
	Paused    bool
	Muted     bool
}
