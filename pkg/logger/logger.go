package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// New собирает JSON-логгер с заданным уровнем.
// Некорректный уровень не считается ошибкой, берется info.
func New(logLevel string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})

	if level, err := logrus.ParseLevel(logLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}

	return log
}
