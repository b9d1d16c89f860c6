package quizgen

// RemoteConfig controls the behavior of the LLMSource.
type RemoteConfig struct {
	// BatchCount is how many questions to request per LLM call. Questions
	// are queued locally and served one at a time.
	BatchCount int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultRemoteConfig returns the recommended defaults.
func DefaultRemoteConfig() RemoteConfig {
	return RemoteConfig{
		BatchCount:  8,
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}
