package step

import (
	"github.com/bitrise-io/go-utils/colorstring"
	"github.com/bitrise-io/go-utils/v2/log"
)

// Utils ...
type Utils struct {
	logger log.Logger
}

// NewUtils ...
func NewUtils(logger log.Logger) Utils {
	return Utils{
		logger: logger,
	}
}

func (u Utils) printArtifactsHint() {
	u.logger.Infof(colorstring.Magenta(`
The test results payload is stored in $BITRISE_DEPLOY_DIR, and its full path
is available in the $BITRISE_TESTLINK_RESULTS_PATH environment variable.

If you have the Deploy to Bitrise.io step (after this step),
that will attach the file to your build as an artifact!`))
}
