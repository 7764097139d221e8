package manager

// GameRecord summarises one finished game.
type GameRecord struct {
	Score int
	Steps int
	Cause string
}

// StateManager keeps score history across restarts within one session.
type StateManager struct {
	highScore int
	history   []GameRecord
}

func NewStateManager() *StateManager {
	return &StateManager{
		history: make([]GameRecord, 0),
	}
}

func (sm *StateManager) RecordGame(record GameRecord) {
	if record.Score > sm.highScore {
		sm.highScore = record.Score
	}
	sm.history = append(sm.history, record)
}

func (sm *StateManager) HighScore() int {
	return sm.highScore
}

func (sm *StateManager) History() []GameRecord {
	return sm.history
}

func (sm *StateManager) GamesPlayed() int {
	return len(sm.history)
}

// Average returns the mean score, 0 before any game has finished.
func (sm *StateManager) Average() float64 {
	if len(sm.history) == 0 {
		return 0
	}
	sum := 0
	for _, r := range sm.history {
		sum += r.Score
	}
	return float64(sum) / float64(len(sm.history))
}
