package hand

import "github.com/sirupsen/logrus"

var log logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces the package logger. The engine only logs at debug level.
func SetLogger(l logrus.FieldLogger) {
	if l != nil {
		log = l
	}
}
