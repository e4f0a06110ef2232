package fileservice

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config carries the upload policy plus the wiring the server needs.
// Tags cover both loading (go-env) and validation (validator).
type Config struct {
	MaxFileSizeBytes  int64    `env:"MAX_FILE_SIZE_BYTES,required=true" validate:"gt=0"`
	AllowedExtensions []string `env:"ALLOWED_EXTENSIONS,required=true" validate:"min=1,dive,startswith=."`
	Bucket            string   `env:"S3_BUCKET,required=true" validate:"required"`
	Region            string   `env:"S3_REGION,required=true" validate:"required"`
	Endpoint          string   `env:"S3_ENDPOINT"`
	AccessKeyID       string   `env:"S3_ACCESS_KEY_ID,required=true" validate:"required"`
	SecretAccessKey   string   `env:"S3_SECRET_ACCESS_KEY,required=true" validate:"required"`
	BadgerPath        string   `env:"BADGER_FILEPATH,required=true" validate:"required"`
	LogLevel          string   `env:"LOG_LEVEL,required=true" validate:"required"`
	Host              string   `env:"HOST,default=localhost"`
	Port              int      `env:"PORT,default=8080" validate:"gt=0"`
}

// Normalize lowercases the extension allow-list and guarantees the dot prefix,
// so "PDF", "pdf" and ".pdf" all mean the same thing. Call it before Validate.
func (c *Config) Normalize() {
	for i, ext := range c.AllowedExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.AllowedExtensions[i] = ext
	}
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
