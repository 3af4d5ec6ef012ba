package main

import (
	"errors"
	"flag"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"cachet/internal/drop"
)

type config struct {
	Listen   string `yaml:"listen"`
	MaxQueue int    `yaml:"max_queue"`
}

func loadConfig(path string) (config, error) {
	cfg := config{Listen: ":8080", MaxQueue: drop.DefaultMaxQueue}
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Listen == "" {
		cfg.Listen = ":8080"
	}
	return cfg, nil
}

func main() {
	configPath := flag.String("config", "", "path to YAML config")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.WithError(err).Fatal("load config")
	}

	srv := drop.NewServer(cfg.MaxQueue, log)
	log.WithField("listen", cfg.Listen).Info("drop server listening")
	if err := http.ListenAndServe(cfg.Listen, srv.Handler()); err != nil {
		log.WithError(err).Fatal("serve")
	}
}
