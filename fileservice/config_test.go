package fileservice

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		MaxFileSizeBytes:  1 << 20,
		AllowedExtensions: []string{".txt", ".png"},
		Bucket:            "uploads",
		Region:            "eu-west-3",
		AccessKeyID:       "key",
		SecretAccessKey:   "secret",
		BadgerPath:        "/tmp/uploads-db",
		LogLevel:          "INFO",
		Host:              "localhost",
		Port:              8080,
	}
}

func TestConfig_Normalize(t *testing.T) {
	req := require.New(t)

	// Given: an allow-list with inconsistent casing and missing dots
	config := validConfig()
	config.AllowedExtensions = []string{"PDF", " .Png ", "txt"}

	// When: normalizing
	config.Normalize()

	// Then: every entry is lowercase and dot-prefixed
	req.Equal([]string{".pdf", ".png", ".txt"}, config.AllowedExtensions)
}

func TestConfig_Validate_Success(t *testing.T) {
	req := require.New(t)
	config := validConfig()
	req.NoError(config.Validate())
}

func TestConfig_Validate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "zero size ceiling", mutate: func(c *Config) { c.MaxFileSizeBytes = 0 }},
		{name: "empty allow-list", mutate: func(c *Config) { c.AllowedExtensions = nil }},
		{name: "extension without dot", mutate: func(c *Config) { c.AllowedExtensions = []string{"txt"} }},
		{name: "missing bucket", mutate: func(c *Config) { c.Bucket = "" }},
		{name: "missing region", mutate: func(c *Config) { c.Region = "" }},
		{name: "missing badger path", mutate: func(c *Config) { c.BadgerPath = "" }},
		{name: "invalid port", mutate: func(c *Config) { c.Port = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			config := validConfig()
			tt.mutate(&config)
			req.Error(config.Validate())
		})
	}
}

func TestConfig_Validate_EndpointIsOptional(t *testing.T) {
	req := require.New(t)
	config := validConfig()
	config.Endpoint = ""
	req.NoError(config.Validate())

	config.Endpoint = "http://localhost:9000"
	req.NoError(config.Validate())
}
