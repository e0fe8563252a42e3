package catalog

// UseCaseProfile describes one business use case and the priority weights a
// "balanced" ranking applies for it.
type UseCaseProfile struct {
	Key     string       `json:"key"`
	Aliases []string     `json:"-"`
	Weights ScoreWeights `json:"weights"`
}

// DefaultUseCaseWeights applies when the requested use case is unrecognized.
var DefaultUseCaseWeights = ScoreWeights{Latency: 70, Quality: 70, Cost: 60}

// UseCases lists every recognized use case. Keys are kebab-case and double as
// the canonical spelling for resolution.
var UseCases = []UseCaseProfile{
	{
		Key:     "customer-support",
		Aliases: []string{"customer support", "support", "call center", "contact center", "helpdesk"},
		Weights: ScoreWeights{Latency: 70, Quality: 80, Cost: 60},
	},
	{
		Key:     "healthcare",
		Aliases: []string{"health care", "medical", "telehealth", "clinical"},
		Weights: ScoreWeights{Latency: 50, Quality: 100, Cost: 40},
	},
	{
		Key:     "sales",
		Aliases: []string{"outbound sales", "sales calls", "lead qualification"},
		Weights: ScoreWeights{Latency: 80, Quality: 70, Cost: 60},
	},
	{
		Key:     "education",
		Aliases: []string{"tutoring", "learning", "language learning"},
		Weights: ScoreWeights{Latency: 60, Quality: 90, Cost: 50},
	},
	{
		Key:     "finance",
		Aliases: []string{"banking", "fintech", "financial services"},
		Weights: ScoreWeights{Latency: 60, Quality: 90, Cost: 60},
	},
	{
		Key:     "legal",
		Aliases: []string{"law", "legal intake", "compliance"},
		Weights: ScoreWeights{Latency: 40, Quality: 100, Cost: 50},
	},
	{
		Key:     "travel",
		Aliases: []string{"hospitality", "booking", "concierge"},
		Weights: ScoreWeights{Latency: 70, Quality: 70, Cost: 60},
	},
	{
		Key:     "gaming",
		Aliases: []string{"games", "npc", "interactive entertainment"},
		Weights: ScoreWeights{Latency: 100, Quality: 60, Cost: 50},
	},
	{
		Key:     "accessibility",
		Aliases: []string{"assistive", "screen reader", "captioning"},
		Weights: ScoreWeights{Latency: 60, Quality: 100, Cost: 40},
	},
	{
		Key:     "entertainment",
		Aliases: []string{"media", "storytelling", "companionship"},
		Weights: ScoreWeights{Latency: 80, Quality: 70, Cost: 70},
	},
}

// UseCaseWeights returns the priority weights for a canonical use-case key,
// or DefaultUseCaseWeights when the key is unrecognized.
func UseCaseWeights(key string) ScoreWeights {
	for _, uc := range UseCases {
		if uc.Key == key {
			return uc.Weights
		}
	}
	return DefaultUseCaseWeights
}

// UseCaseAliases returns the alias table for use-case resolution, keyed by
// canonical use-case key.
func UseCaseAliases() map[string][]string {
	out := make(map[string][]string, len(UseCases))
	for _, uc := range UseCases {
		out[uc.Key] = uc.Aliases
	}
	return out
}
