package config

// Config holds runtime settings for the RetailHub client.
//
// Fields:
//   - ServerBaseURL: base URL of the remote user-storage service.
//   - SessionDBPath: path of the local session database file.
//   - PreserveReturnURL: whether a guard redirect to login carries the
//     attempted destination for a post-login return.
type Config struct {
	ServerBaseURL     string
	SessionDBPath     string
	PreserveReturnURL bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:3001"
	c.SessionDBPath = "retailhub.db"
	c.PreserveReturnURL = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
