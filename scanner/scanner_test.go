package scanner

import (
	"path/filepath"
	"testing"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GivenReportTree_WhenScanWithRecursivePattern_ThenFindsAllMatches(t *testing.T) {
	// Given
	rootDir := prepareReportTree(t)

	// When
	matches, err := NewScanner().Scan(rootDir, "**/TEST-*.xml")

	// Then
	require.NoError(t, err)
	assert.Equal(t, []string{
		"other/TEST-c.xml",
		"reports/TEST-a.xml",
		"reports/sub/TEST-b.xml",
	}, matches)
}

func Test_GivenReportTree_WhenScanWithSingleStarPattern_ThenDoesNotCrossDirectories(t *testing.T) {
	// Given
	rootDir := prepareReportTree(t)

	// When
	matches, err := NewScanner().Scan(rootDir, "reports/*.xml")

	// Then
	require.NoError(t, err)
	assert.Equal(t, []string{"reports/TEST-a.xml"}, matches)
}

func Test_GivenPatternList_WhenScan_ThenMatchesAnyItemOnce(t *testing.T) {
	// Given
	rootDir := prepareReportTree(t)

	// When
	matches, err := NewScanner().Scan(rootDir, "reports/*.xml, other/**, reports/TEST-a.xml")

	// Then
	require.NoError(t, err)
	assert.Equal(t, []string{"other/TEST-c.xml", "reports/TEST-a.xml"}, matches)
}

func Test_GivenNoMatchingFiles_WhenScan_ThenReturnsEmptyList(t *testing.T) {
	// Given
	rootDir := prepareReportTree(t)

	// When
	matches, err := NewScanner().Scan(rootDir, "**/*.tap")

	// Then
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func Test_GivenMissingRootDir_WhenScan_ThenFails(t *testing.T) {
	// When
	matches, err := NewScanner().Scan(filepath.Join(t.TempDir(), "nonexistent"), "**/*.xml")

	// Then
	require.Error(t, err)
	assert.Nil(t, matches)
}

func Test_GivenInvalidPattern_WhenScan_ThenFails(t *testing.T) {
	// Given
	rootDir := prepareReportTree(t)

	// When
	_, err := NewScanner().Scan(rootDir, "[")

	// Then
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid include pattern")
}

// Helpers

func prepareReportTree(t *testing.T) string {
	rootDir := t.TempDir()
	fileManager := fileutil.NewFileManager()

	files := []string{
		"reports/TEST-a.xml",
		"reports/sub/TEST-b.xml",
		"reports/sub/notes.txt",
		"other/TEST-c.xml",
	}
	for _, file := range files {
		err := fileManager.Write(filepath.Join(rootDir, filepath.FromSlash(file)), "<testsuite/>", 0777)
		require.NoError(t, err)
	}

	return rootDir
}
