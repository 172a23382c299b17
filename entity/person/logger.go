package person

import "github.com/sirupsen/logrus"

var log = logrus.WithField("module", "person")
