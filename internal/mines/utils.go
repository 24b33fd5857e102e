package mines

import "github.com/sirupsen/logrus"

var Log = logrus.New()

func iif[T any](condition bool, valueIfTrue, valueIfFalse T) T {
	if condition {
		return valueIfTrue
	} else {
		return valueIfFalse
	}
}
