package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

type Config struct {
	// Addrs is empty when publishing is disabled.
	Addrs []string `envconfig:"KAFKA_ADDRS"`
	Topic string   `envconfig:"KAFKA_TOPIC" default:"library.events"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Retry.Max = 2
	defaultCfg.Producer.Timeout = 5 * time.Second
	defaultCfg.Net.DialTimeout = 3 * time.Second

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}
