package manager

// maxScores bounds the score history kept for display.
const maxScores = 50

// GameStats is the in-memory scoreboard of one session. Nothing is saved.
type GameStats struct {
	Score        int
	HighScore    int
	GamesPlayed  int
	ScoreHistory []int
}

// StateManager keeps the running score and the results of finished games.
type StateManager struct {
	score        int
	highScore    int
	gamesPlayed  int
	scoreHistory []int
}

func NewStateManager() *StateManager {
	return &StateManager{
		scoreHistory: make([]int, 0, maxScores),
	}
}

// AddPoint credits one eaten apple.
func (sm *StateManager) AddPoint() {
	sm.score++
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
}

// EndGame records the current score as a finished game and zeroes it.
// It returns the score that was recorded.
func (sm *StateManager) EndGame() int {
	final := sm.score
	if len(sm.scoreHistory) >= maxScores {
		sm.scoreHistory = sm.scoreHistory[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, final)
	sm.gamesPlayed++
	sm.score = 0
	return final
}

// ResetScore zeroes the running score without recording a game.
func (sm *StateManager) ResetScore() {
	sm.score = 0
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

// AverageScore is the mean of the kept history, 0 before the first game ends.
func (sm *StateManager) AverageScore() float64 {
	if len(sm.scoreHistory) == 0 {
		return 0
	}
	sum := 0
	for _, s := range sm.scoreHistory {
		sum += s
	}
	return float64(sum) / float64(len(sm.scoreHistory))
}

func (sm *StateManager) Stats() GameStats {
	history := make([]int, len(sm.scoreHistory))
	copy(history, sm.scoreHistory)
	return GameStats{
		Score:        sm.score,
		HighScore:    sm.highScore,
		GamesPlayed:  sm.gamesPlayed,
		ScoreHistory: history,
	}
}
