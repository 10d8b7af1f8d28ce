package app

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	CfgDB           ConfigDB      `yaml:"db"`
	CfgKafka        ConfigKafka   `yaml:"kafka"`
	CatalogPath     string        `yaml:"catalog_path"`
	Currency        string        `yaml:"currency"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	ServerPort      string        `yaml:"srv_port"`
	CheckoutTimeout time.Duration `yaml:"checkout_timeout"`
}

type ConfigDB struct {
	Login    string `yaml:"login"`
	Password string `yaml:"password"`
	Port     uint   `yaml:"port"`
	Database string `yaml:"database"`
	Host     string `yaml:"host"`
}

type ConfigKafka struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
	GroupID string   `yaml:"group_id"`
}

const (
	defaultServerPort      = ":8080"
	defaultCurrency        = "₱"
	defaultCheckoutTimeout = 10 * time.Second
)

func NewConfig(configPath string) (*Config, error) {
	cfg, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var c Config
	err = yaml.Unmarshal(cfg, &c)
	if err != nil {
		return nil, err
	}

	if c.ServerPort == "" {
		c.ServerPort = defaultServerPort
	}
	if c.Currency == "" {
		c.Currency = defaultCurrency
	}
	if c.CheckoutTimeout == 0 {
		c.CheckoutTimeout = defaultCheckoutTimeout
	}

	return &c, nil
}
