package main

import (
	"errors"
	"flag"
	"io/fs"

	"github.com/blinky-z/PostsAPI/server"
	"github.com/google/gops/agent"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "", "optional config file path")
	envPath := flag.String("env", ".env", "optional file with env variables")
	flag.Parse()

	if err := godotenv.Load(*envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.WithFields(log.Fields{
			"err":  err,
			"path": *envPath,
		}).Fatal("Could not load env file")
	}

	config, err := server.LoadConfig(*configPath)
	if err != nil {
		log.WithFields(log.Fields{
			"err":  err,
			"path": *configPath,
		}).Fatal("Could not load configuration")
	}

	logger := log.StandardLogger()
	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		log.WithField("err", err).Warn("Unknown log level, using info")
		level = log.InfoLevel
	}
	logger.SetLevel(level)

	if config.GopsAgent {
		if err := agent.Listen(agent.Options{
			ShutdownCleanup: true,
		}); err != nil {
			log.WithField("err", err).Warn("Could not start gops agent")
		} else {
			defer agent.Close()
		}
	}

	if err := server.RunServer(config, logger); err != nil {
		log.WithField("err", err).Fatal("Could not listen and serve")
	}
}
