package config

// Config is the top-level application configuration.
type Config struct {
	Agent       AgentConfig    `json:"agent"`
	LLM         LLMConfig      `json:"llm"`
	FallbackLLM *LLMConfig     `json:"fallback_llm,omitempty"`
	Server      ServerConfig   `json:"server"`
	Channels    ChannelsConfig `json:"channels"`
	Store       StoreConfig    `json:"store"`
	LogLevel    string         `json:"log_level"`
}

type AgentConfig struct {
	SystemPrompt string  `json:"system_prompt"`
	MaxTokens    int     `json:"max_tokens"`
	Temperature  float64 `json:"temperature"`
}

type LLMConfig struct {
	Provider    string `json:"provider"`
	Model       string `json:"model"`
	APIKey      string `json:"api_key,omitempty"`
	BaseURL     string `json:"base_url,omitempty"`
	TimeoutSecs int    `json:"timeout_secs"`
}

type ServerConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

type ChannelsConfig struct {
	Telegram *TelegramConfig `json:"telegram,omitempty"`
}

type TelegramConfig struct {
	Token      string  `json:"token"`
	AllowedIDs []int64 `json:"allowed_ids,omitempty"`
}

type StoreConfig struct {
	// Path to the SQLite invocation log. Empty means ~/.toolbridge/invocations.db.
	Path string `json:"path,omitempty"`
}
