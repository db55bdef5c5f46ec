package step

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-testlink-result-export/output"
	"github.com/bitrise-steplib/steps-testlink-result-export/seeker"
	"github.com/bitrise-steplib/steps-testlink-result-export/svnrev"
	"github.com/bitrise-steplib/steps-testlink-result-export/testlink"
	"github.com/hashicorp/go-version"
)

const minSupportedSVNVersion = "1.9.0"

// Input ...
type Input struct {
	// TestLink Parameters
	TestLinkRecordsPath   string `env:"testlink_records_path,required"`
	AutomatedTestKeyField string `env:"automated_test_key_field,required"`

	// Report Collection
	ReportRootDir       string `env:"report_root_dir,required"`
	JUnitIncludePattern string `env:"junit_include_pattern"`

	// Build Name
	BuildName        string `env:"build_name"`
	BuildNameFromSVN bool   `env:"build_name_from_svn,opt[yes,no]"`

	// SVN Configs
	SVNRepositoryURL     string          `env:"svn_repository_url"`
	SVNUsername          string          `env:"svn_username"`
	SVNPassword          stepconf.Secret `env:"svn_password"`
	SVNAdditionalOptions string          `env:"svn_additional_options"`

	// Debug
	VerboseLog bool `env:"verbose_log,opt[yes,no]"`

	// Output export
	DeployDir string `env:"BITRISE_DEPLOY_DIR"`
}

// Config ...
type Config struct {
	Report         *testlink.Report
	KeyCustomField string

	ReportRootDir  string
	IncludePattern string

	BuildName        string
	BuildNameFromSVN bool
	SVNRepository    svnrev.Repository

	DeployDir string
}

// TestLinkConfigParser ...
type TestLinkConfigParser struct {
	inputParser   stepconf.InputParser
	logger        log.Logger
	recordsLoader testlink.Loader
	pathChecker   pathutil.PathChecker
	pathModifier  pathutil.PathModifier
}

// NewTestLinkConfigParser ...
func NewTestLinkConfigParser(inputParser stepconf.InputParser, logger log.Logger, recordsLoader testlink.Loader, pathChecker pathutil.PathChecker, pathModifier pathutil.PathModifier) TestLinkConfigParser {
	return TestLinkConfigParser{
		inputParser:   inputParser,
		logger:        logger,
		recordsLoader: recordsLoader,
		pathChecker:   pathChecker,
		pathModifier:  pathModifier,
	}
}

// ProcessConfig ...
func (s TestLinkConfigParser) ProcessConfig() (Config, error) {
	var input Input
	err := s.inputParser.Parse(&input)
	if err != nil {
		return Config{}, err
	}

	stepconf.Print(input)
	s.logger.Println()

	s.logger.EnableDebugLog(input.VerboseLog)

	// validate report root directory
	reportRootDir, err := s.pathModifier.AbsPath(input.ReportRootDir)
	if err != nil {
		return Config{}, fmt.Errorf("failed to get absolute report root directory path: %w", err)
	}
	exists, err := s.pathChecker.IsDirExists(reportRootDir)
	if err != nil {
		return Config{}, fmt.Errorf("failed to check report root directory (%s): %w", reportRootDir, err)
	}
	if !exists {
		return Config{}, fmt.Errorf("report root directory (%s) does not exist", reportRootDir)
	}

	// load test-case records
	report, err := s.recordsLoader.Load(input.TestLinkRecordsPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load test-case records: %w", err)
	}
	s.logger.Printf("Loaded %d test-case record(s) for test plan %s.", len(report.TestCases), report.TestPlan.Name)

	if strings.TrimSpace(input.JUnitIncludePattern) == "" {
		s.logger.Warnf("JUnit report include pattern (junit_include_pattern) is empty, no JUnit results will be collected.")
	}

	// validate build name inputs
	buildNameFromSVN := input.BuildNameFromSVN
	if input.BuildName != "" && buildNameFromSVN {
		s.logger.Warnf("Build Name (build_name) is set, ignoring Build Name from SVN (build_name_from_svn).")
		buildNameFromSVN = false
	}

	var svnRepository svnrev.Repository
	if buildNameFromSVN {
		if strings.TrimSpace(input.SVNRepositoryURL) == "" {
			return Config{}, errors.New("Build Name from SVN (build_name_from_svn) requires the SVN Repository URL (svn_repository_url)")
		}

		svnRepository, err = svnrev.NewRepository(input.SVNRepositoryURL, input.SVNUsername, input.SVNPassword, input.SVNAdditionalOptions)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SVN repository: %w", err)
		}
	}

	if input.BuildName == "" && !buildNameFromSVN && report.Build.Name == "" {
		return Config{}, errors.New("no build name: set Build Name (build_name), enable Build Name from SVN (build_name_from_svn) or name the build in the records manifest")
	}

	return Config{
		Report:         report,
		KeyCustomField: input.AutomatedTestKeyField,

		ReportRootDir:  reportRootDir,
		IncludePattern: input.JUnitIncludePattern,

		BuildName:        input.BuildName,
		BuildNameFromSVN: buildNameFromSVN,
		SVNRepository:    svnRepository,

		DeployDir: input.DeployDir,
	}, nil
}

// TestLinkResultExporter ...
type TestLinkResultExporter struct {
	logger         log.Logger
	svnClient      svnrev.Client
	seeker         seeker.Seeker
	outputExporter output.Exporter
	utils          Utils
}

// NewTestLinkResultExporter ...
func NewTestLinkResultExporter(logger log.Logger, svnClient svnrev.Client, seeker seeker.Seeker, outputExporter output.Exporter, utils Utils) TestLinkResultExporter {
	return TestLinkResultExporter{
		logger:         logger,
		svnClient:      svnClient,
		seeker:         seeker,
		outputExporter: outputExporter,
		utils:          utils,
	}
}

// InstallDeps ...
func (s TestLinkResultExporter) InstallDeps(useSVN bool) error {
	if !useSVN {
		return nil
	}

	svnVersion, err := s.svnClient.Version()
	if err != nil {
		return fmt.Errorf("failed to determine svn client version: %w", err)
	}
	s.logger.Printf("- svnVersion: %s", svnVersion.String())
	s.logger.Println()

	minVersion, err := version.NewVersion(minSupportedSVNVersion)
	if err != nil {
		return fmt.Errorf("failed to parse minimum supported svn version (%s): %w", minSupportedSVNVersion, err)
	}
	if svnVersion.LessThan(minVersion) {
		return fmt.Errorf("invalid svn client version (%s), should not be less than min supported: %s", svnVersion, minSupportedSVNVersion)
	}

	return nil
}

// Result ...
type Result struct {
	Report      *testlink.Report
	Results     []testlink.TestResult
	ReportPaths []string
	BuildName   string
	DeployDir   string
}

// Run ...
func (s TestLinkResultExporter) Run(cfg Config) (Result, error) {
	result := Result{
		Report:    cfg.Report,
		DeployDir: cfg.DeployDir,
	}

	// Resolve build name
	buildName := cfg.BuildName
	if buildName == "" && cfg.BuildNameFromSVN {
		s.logger.Infof("Querying the latest revision of %s", cfg.SVNRepository.URL())

		revision, err := s.svnClient.LatestRevision(cfg.SVNRepository)
		if err != nil {
			return result, fmt.Errorf("failed to get the latest SVN revision: %w", err)
		}

		buildName = fmt.Sprintf("r%d", revision)
		s.logger.Donef("Latest revision: %d", revision)
		s.logger.Println()
	}
	if buildName == "" {
		buildName = cfg.Report.Build.Name
	}

	cfg.Report.Build.Name = buildName
	result.BuildName = buildName

	// Collect results
	s.logger.Infof("Collecting JUnit results for build %s", buildName)

	found, err := s.seeker.Seek(seeker.SeekParams{
		Report:         cfg.Report,
		KeyCustomField: cfg.KeyCustomField,
		ReportRootDir:  cfg.ReportRootDir,
		IncludePattern: cfg.IncludePattern,
	})
	if err != nil {
		return result, err
	}

	result.Results = found.Results
	result.ReportPaths = found.ReportPaths

	s.logger.Println()
	s.logger.Infof("JUnit result collection succeeded.")

	return result, nil
}

// Export ...
func (s TestLinkResultExporter) Export(result Result, seekFailed bool) error {
	// export seek run status
	s.outputExporter.ExportSeekRunResult(seekFailed)

	if seekFailed || result.Report == nil {
		return nil
	}

	if result.DeployDir == "" {
		s.logger.Warnf("No deploy directory (BITRISE_DEPLOY_DIR) set, skipping artifact export.")
		return nil
	}

	// export test results payload
	pth, err := s.outputExporter.ExportTestResultsPayload(result.DeployDir, result.Report, result.Results)
	if err != nil {
		return err
	}
	s.logger.Donef("Test results payload exported: %s", pth)

	// export matched report files
	if err := s.outputExporter.ExportReportArchive(result.DeployDir, result.ReportPaths); err != nil {
		return err
	}

	if err := s.outputExporter.ExportReportsForTestAddon(result.ReportPaths, result.BuildName); err != nil {
		s.logger.Warnf("%s", err)
	}

	s.utils.printArtifactsHint()

	return nil
}
