package lane

import "github.com/sirupsen/logrus"

// log is the lane package's logger, tagged so log lines can be
// filtered by module the way every other package in this tree is.
var log = logrus.WithField("module", "lane")
