package botmod

// One rule's bot-likelihood estimate for the run.
type SubScore struct {
	Rule  string
	Score float64
}

// Mutable container for the outputs of rule execution on a single profile. Collected during dispatch and aggregated by the engine at the end of the run; nothing is persisted until every rule has finished.
type Effects struct {
	SubScores []SubScore
}

func (e *Effects) AddSubScore(rule string, score float64) {
	e.SubScores = append(e.SubScores, SubScore{Rule: rule, Score: score})
}
