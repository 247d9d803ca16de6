package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

func (a *App) initLogger() error {
	a.Logger = logrus.New()
	a.Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	switch a.Config.LogLevel {
	case "DEBUG":
		a.Logger.SetLevel(logrus.DebugLevel)
	case "ERROR":
		a.Logger.SetLevel(logrus.ErrorLevel)
	default:
		a.Logger.SetLevel(logrus.InfoLevel)
	}

	if a.Config.LogFile == "" {
		return nil
	}

	f, err := os.OpenFile(a.Config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	a.Logger.SetOutput(io.MultiWriter(os.Stdout, f))

	return nil
}
