package manager

import "time"

// Stats is a snapshot of one run. Nothing here outlives the process.
type Stats struct {
	StartTime  time.Time `json:"startTime"`
	Ticks      int       `json:"ticks"`
	FoodEaten  int       `json:"foodEaten"`
	Resets     int       `json:"resets"`
	Length     int       `json:"length"`
	BestLength int       `json:"bestLength"`
	// LengthHistory holds the length the snake reached before each reset.
	LengthHistory []int `json:"lengthHistory"`
}

// StateManager keeps in-memory statistics of the running game.
type StateManager struct {
	startTime     time.Time
	ticks         int
	foodEaten     int
	resets        int
	length        int
	bestLength    int
	lengthHistory []int
}

// maxHistory caps LengthHistory so an endless run stays bounded.
const maxHistory = 200

func NewStateManager(initialLength int) *StateManager {
	return &StateManager{
		startTime:     time.Now(),
		length:        initialLength,
		bestLength:    initialLength,
		lengthHistory: make([]int, 0),
	}
}

// TickDone records the snake length at the end of a tick.
func (sm *StateManager) TickDone(length int) {
	sm.ticks++
	sm.length = length
	if length > sm.bestLength {
		sm.bestLength = length
	}
}

func (sm *StateManager) FoodEaten() {
	sm.foodEaten++
}

// SnakeReset records a self-collision; lengthLost is the body length at the
// moment of collision.
func (sm *StateManager) SnakeReset(lengthLost int) {
	sm.resets++
	if lengthLost > sm.bestLength {
		sm.bestLength = lengthLost
	}
	if len(sm.lengthHistory) >= maxHistory {
		sm.lengthHistory = sm.lengthHistory[1:]
	}
	sm.lengthHistory = append(sm.lengthHistory, lengthLost)
}

func (sm *StateManager) GetBestLength() int {
	return sm.bestLength
}

func (sm *StateManager) GetLengthHistory() []int {
	return sm.lengthHistory
}

// Snapshot returns a copy of the current statistics.
func (sm *StateManager) Snapshot() Stats {
	history := make([]int, len(sm.lengthHistory))
	copy(history, sm.lengthHistory)
	return Stats{
		StartTime:     sm.startTime,
		Ticks:         sm.ticks,
		FoodEaten:     sm.foodEaten,
		Resets:        sm.resets,
		Length:        sm.length,
		BestLength:    sm.bestLength,
		LengthHistory: history,
	}
}

// AverageLength returns the mean length reached before a reset, or 0 when
// the snake has never been reset.
func (s Stats) AverageLength() float64 {
	if len(s.LengthHistory) == 0 {
		return 0
	}
	sum := 0
	for _, l := range s.LengthHistory {
		sum += l
	}
	return float64(sum) / float64(len(s.LengthHistory))
}

// Elapsed returns the run duration up to now.
func (s Stats) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}
