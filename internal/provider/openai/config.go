package openai

// Config contains OpenAI SDK settings for the model-discovery tier.
type Config struct {
	APIKey     string `env:"OPENAI_API_KEY"`
	BaseURL    string `env:"OPENAI_BASE_URL"    envDefault:""`
	MaxRetries int    `env:"OPENAI_MAX_RETRIES" envDefault:"2"`
}
