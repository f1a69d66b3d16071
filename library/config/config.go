package config

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-records/pkg/database"
	"github.com/Astemirdum/library-records/pkg/kafka"
	"github.com/Astemirdum/library-records/pkg/logger"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"LIBRARY_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"LIBRARY_HTTP_PORT" default:"8060"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

type Config struct {
	Server   HTTPServer  `yaml:"server"`
	Database database.DB `yaml:"db"`
	Kafka    kafka.Config
	Log      logger.Log `yaml:"log"`
}

var (
	once   sync.Once
	cfg    Config
	cfgErr error
)

// NewConfig reads config from environment.
// Options only set fields that carry no default tag.
func NewConfig(ops ...Option) (Config, error) {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		if err := envconfig.Process("", &config); err != nil {
			cfgErr = errors.Wrap(err, "envconfig.Process")
			return
		}
		cfg = config
	})
	return cfg, cfgErr
}

// String renders the config with the database password masked.
func (c Config) String() string {
	if c.Database.Password != "" {
		c.Database.Password = "***"
	}
	data, _ := json.MarshalIndent(c, "", "	") //nolint:errcheck
	return string(data)
}
