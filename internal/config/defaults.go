package config

const (
	// DefaultWorkDir is the default working directory
	DefaultWorkDir = "."
	// DefaultOutputJSONFile is the default results file name
	DefaultOutputJSONFile = "test-runs.json"
	// DefaultOutputJSONDir is the default results directory
	DefaultOutputJSONDir = ".tex"
	// DefaultDatabaseName is the default MySQL schema for run records
	DefaultDatabaseName = "tex_runs"
)

// DefaultSkipDirs are directory names never entered during test discovery.
var DefaultSkipDirs = []string{
	"node_modules",
	"vendor",
	"dist",
	"build",
	"target",
	"__pycache__",
	"venv",
	"coverage",
	"storage",
}
