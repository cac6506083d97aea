package config

// NarrativeConfig controls the generative-text collaborator.
type NarrativeConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout Duration
}

func loadNarrative() NarrativeConfig {
	return NarrativeConfig{
		APIKey:  envOrDefault(envOpenAIKey, ""),
		BaseURL: envOrDefault(envOpenAIBaseURL, defaultOpenAIBaseURL),
		Model:   envOrDefault(envOpenAIModel, defaultOpenAIModel),
		Timeout: durationEnvOrDefault(envOpenAITimeout, defaultOpenAITimeout),
	}
}
