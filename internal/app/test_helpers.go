package app

import (
	log "github.com/sirupsen/logrus"
)

// loggerForAppTests возвращает logger для тестов пакета.
func loggerForAppTests() *log.Entry {
	logger := log.New()
	logger.SetLevel(log.ErrorLevel)
	return logger.WithField("component", "app-test")
}
