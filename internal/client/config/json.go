package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/jobintake/internal/flagx"
	"github.com/dmitrijs2005/jobintake/internal/timex"
)

// JsonConfig is the intermediate DTO for reading JSON configuration files.
// It uses timex.Duration for interval fields, which allows parsing both
// string values such as "30s" and integer nanoseconds. After unmarshalling,
// its fields are copied into the runtime Config struct.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	GapPolicy          string         `json:"gap_policy"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
}

// parseJson loads configuration values from the JSON file given via the
// -c or -config flags. When neither flag is set, no file is loaded. An
// unreadable or invalid file panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.ServerEndpointAddr = c.ServerEndpointAddr
	config.GapPolicy = c.GapPolicy
	config.RequestTimeout = time.Duration(c.RequestTimeout.Duration)
}
