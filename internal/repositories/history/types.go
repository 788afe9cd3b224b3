package history

// AddInput contains parameters for recording a session's box profit
type AddInput struct {
	StartTime int64
	UID       int64
	UName     string
	Profit    float64
}

// RankInput identifies a recorded session
type RankInput struct {
	StartTime int64
	UID       int64
	UName     string
}
