package main

import (
	"os"

	"github.com/bitrise-io/go-steputils/v2/export"
	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-testlink-result-export/attachment"
	"github.com/bitrise-steplib/steps-testlink-result-export/junitxml"
	"github.com/bitrise-steplib/steps-testlink-result-export/output"
	"github.com/bitrise-steplib/steps-testlink-result-export/scanner"
	"github.com/bitrise-steplib/steps-testlink-result-export/seeker"
	"github.com/bitrise-steplib/steps-testlink-result-export/step"
	"github.com/bitrise-steplib/steps-testlink-result-export/svnrev"
	"github.com/bitrise-steplib/steps-testlink-result-export/testaddon"
	"github.com/bitrise-steplib/steps-testlink-result-export/testlink"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := log.NewLogger()

	configParser := createConfigParser(logger)
	config, err := configParser.ProcessConfig()
	if err != nil {
		logger.Errorf("Process config: %s", err)
		return 1
	}

	resultExporter := createResultExporter(logger)

	if err := resultExporter.InstallDeps(config.BuildNameFromSVN); err != nil {
		logger.Errorf("Install dependencies: %s", err)
		return 1
	}

	result, runErr := resultExporter.Run(config)
	if runErr != nil {
		logger.Errorf("Run: %s", runErr)
	}

	if err := resultExporter.Export(result, runErr != nil); err != nil {
		logger.Errorf("Export outputs: %s", err)
		return 1
	}

	if runErr != nil {
		return 1
	}

	return 0
}

func createConfigParser(logger log.Logger) step.TestLinkConfigParser {
	envRepository := env.NewRepository()
	inputParser := stepconf.NewInputParser(envRepository)
	recordsLoader := testlink.NewLoader()
	pathChecker := pathutil.NewPathChecker()
	pathModifier := pathutil.NewPathModifier()

	return step.NewTestLinkConfigParser(inputParser, logger, recordsLoader, pathChecker, pathModifier)
}

func createResultExporter(logger log.Logger) step.TestLinkResultExporter {
	envRepository := env.NewRepository()
	commandFactory := command.NewFactory(envRepository)

	svnClient := svnrev.NewClient(commandFactory, logger)

	junitParser := junitxml.NewParser()
	reportScanner := scanner.NewScanner()
	attachmentBuilder := attachment.NewBuilder()
	resultSeeker := seeker.NewJUnitSeeker(junitParser, reportScanner, attachmentBuilder, logger)

	outputExporter := export.NewExporter(commandFactory)
	testAddonExporter := testaddon.NewExporter(testaddon.NewTestAddon(logger))
	stepOutputExporter := output.NewExporter(envRepository, logger, outputExporter, testAddonExporter)

	utils := step.NewUtils(logger)

	return step.NewTestLinkResultExporter(logger, svnClient, resultSeeker, stepOutputExporter, utils)
}
