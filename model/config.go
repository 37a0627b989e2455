package model

// EnvConfig is the env-var JSON blob loaded at startup.
type EnvConfig struct {
	Environment      string `json:"environment"`
	Port             string `json:"port"`
	MongoUser        string `json:"mongoUser"`
	MongoPassword    string `json:"mongoPassword"`
	RedisURL         string `json:"redisUrl"`
	GeminiApiKey     string `json:"geminiApiKey"`
	GeminiModel      string `json:"geminiModel"`
	Trading212ApiKey string `json:"trading212ApiKey"`
	JwtSecret        string `json:"jwtSecret"`
	AdminEmail       string `json:"adminEmail"`
	AdminPassword    string `json:"adminPassword"` // bcrypt hash
}

// RuntimeConfig holds the toggles that can be swapped while the server runs.
type RuntimeConfig struct {
	RateLimiter bool `json:"rateLimiter" bson:"rateLimiter"`
}
