package history

import (
	"time"

	"github.com/fadedpez/parlor/pkg/entities"
)

// ESRound is a round document in Elasticsearch
type ESRound struct {
	RoundID     string    `json:"round_id"`
	Game        string    `json:"game"`
	Outcome     string    `json:"outcome"`
	Delta       int64     `json:"delta"`
	ScoreAfter  int64     `json:"score_after"`
	Detail      string    `json:"detail"`
	CompletedAt time.Time `json:"completed_at"`
}

func newESRound(record *entities.RoundRecord) ESRound {
	return ESRound{
		RoundID:     record.ID,
		Game:        record.Game,
		Outcome:     string(record.Outcome),
		Delta:       record.Delta,
		ScoreAfter:  record.ScoreAfter,
		Detail:      record.Detail,
		CompletedAt: record.CompletedAt.UTC(),
	}
}

const roundIndexMapping = `{
	"mappings": {
		"properties": {
			"round_id":     {"type": "keyword"},
			"game":         {"type": "keyword"},
			"outcome":      {"type": "keyword"},
			"delta":        {"type": "long"},
			"score_after":  {"type": "long"},
			"detail":       {"type": "text"},
			"completed_at": {"type": "date"}
		}
	}
}`
