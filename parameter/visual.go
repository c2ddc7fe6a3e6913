package parameter

// Display Colors (hex, display only)
const (
	ColorCourt = "#235926"
	ColorNet   = "#ffffff"
	ColorUser  = "#fe403f"
	ColorAI    = "#1b1b1e"
	ColorBall  = "#f6c213"
	ColorScore = "#ffffff"
	ColorText  = "#c0caf5"
)

// PausedDimFactor is the blend factor towards black applied to the court while paused
const PausedDimFactor = 0.45
