package main

import (
	"github.com/breedlens/breedlens-frontend/controllers"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultAPIURL = "http://localhost:8000"

type config struct {
	APIURL         string
	Port           string
	PredictTimeout time.Duration
	MaxUploadBytes int64
	ExposeErrors   bool
	LogLevel       logrus.Level
	LogFormat      string
}

// loadConfig reads settings from the environment, after merging in any .env file present.
func loadConfig() (*config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(errors.Cause(err)) {
		return nil, errors.Wrap(err, "couldn't load .env file")
	}
	return parseConfig(os.Getenv)
}

func parseConfig(getenv func(string) string) (*config, error) {
	c := &config{
		APIURL:         defaultAPIURL,
		Port:           "8080",
		MaxUploadBytes: controllers.DefaultMaxUploadBytes,
		LogLevel:       logrus.InfoLevel,
		LogFormat:      "text",
	}

	if v := getenv("API_URL"); v != "" {
		c.APIURL = v
	} else if v := getenv("VITE_API_URL"); v != "" {
		c.APIURL = v
	}
	c.APIURL = strings.TrimRight(c.APIURL, "/")

	if v := getenv("PORT"); v != "" {
		c.Port = v
	}

	if v := getenv("PREDICT_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, errors.Wrap(err, "invalid PREDICT_TIMEOUT")
		}
		if d < 0 {
			return nil, errors.Errorf("invalid PREDICT_TIMEOUT: %s is negative", v)
		}
		c.PredictTimeout = d
	}

	if v := getenv("MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, errors.Wrap(err, "invalid MAX_UPLOAD_BYTES")
		}
		if n <= 0 {
			return nil, errors.Errorf("invalid MAX_UPLOAD_BYTES: %d must be positive", n)
		}
		c.MaxUploadBytes = n
	}

	if v := getenv("EXPOSE_ERRORS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.Wrap(err, "invalid EXPOSE_ERRORS")
		}
		c.ExposeErrors = b
	}

	if v := getenv("LOG_LEVEL"); v != "" {
		level, err := logrus.ParseLevel(v)
		if err != nil {
			return nil, errors.Wrap(err, "invalid LOG_LEVEL")
		}
		c.LogLevel = level
	}

	switch v := strings.ToLower(getenv("LOG_FORMAT")); v {
	case "", "text":
	case "json":
		c.LogFormat = v
	default:
		return nil, errors.Errorf("invalid LOG_FORMAT: %s", v)
	}

	return c, nil
}

func (c *config) configureLogging(l *logrus.Logger) {
	l.SetLevel(c.LogLevel)
	if c.LogFormat == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
