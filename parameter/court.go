package parameter

// Court Geometry (court units, origin top-left)
const (
	CourtWidth  = 600.0
	CourtHeight = 400.0

	// PaddleInset is the gap between a paddle and its vertical court edge
	PaddleInset = 10.0

	PaddleWidth  = 10.0
	PaddleHeight = 100.0

	NetWidth = 4.0
)

// Ball Kinematics
const (
	BallRadius = 7.0

	// BallBaseSpeed is the speed a ball starts every rally with
	BallBaseSpeed = 7.0

	// BallSpeedIncrement is added on every paddle hit, without upper bound
	BallSpeedIncrement = 0.2

	BallInitialVelocityX = 5.0
	BallInitialVelocityY = 5.0
)

// Paddle Control
const (
	// PaddleStep is the user paddle travel per tick while an intent is held
	PaddleStep = 8.0

	// AITrackingGain is the proportional gain of the AI paddle towards the ball
	AITrackingGain = 0.09
)

// Match Rules
const (
	DefaultWinTarget = 5
	MinWinTarget     = 1
)

// WinTargetOptions are the "game of N" choices offered to the player
var WinTargetOptions = []int{3, 5, 7, 9, 11}
