package config

// DefaultSystemPrompt instructs the model to delegate to tools instead of guessing.
const DefaultSystemPrompt = `You are a helpful assistant with access to tools.
You MUST use the available tools when asked about:
- Current time/timestamp: use get_current_timestamp
- Random numbers: use generate_random_number
- UUIDs: use generate_uuid
- Hashing: use hash_string
- File size conversions: use calculate_file_size
- Day of week: use get_day_of_week
- Date calculations: use calculate_days_between

Always provide the tool result in your response.`

// Defaults returns a Config with sensible default values.
func Defaults() *Config {
	return &Config{
		Agent: AgentConfig{
			SystemPrompt: DefaultSystemPrompt,
			MaxTokens:    4096,
			Temperature:  0.1,
		},
		LLM: LLMConfig{
			Provider:    "anthropic",
			Model:       "claude-sonnet-4-5-20250929",
			TimeoutSecs: 120,
		},
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		Channels: ChannelsConfig{},
		Store:    StoreConfig{},
		LogLevel: "info",
	}
}
