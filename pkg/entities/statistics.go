package entities

// RoundStatistics aggregates the recorded rounds of one game
type RoundStatistics struct {
	Game   string
	Rounds int
	Wins   int
	Losses int
	Pushes int
	Net    int64 // sum of all deltas
}

// WinRate calculates the win rate as a percentage
func (s *RoundStatistics) WinRate() float64 {
	if s.Rounds == 0 {
		return 0.0
	}
	return float64(s.Wins) / float64(s.Rounds) * 100.0
}

// Add folds one record into the totals
func (s *RoundStatistics) Add(r *RoundRecord) {
	s.Rounds++
	s.Net += r.Delta
	switch r.Outcome {
	case OutcomeWin:
		s.Wins++
	case OutcomeLoss:
		s.Losses++
	case OutcomePush:
		s.Pushes++
	}
}
