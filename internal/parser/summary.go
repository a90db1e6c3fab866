package parser

import (
	"regexp"
	"strconv"
	"strings"

	"tex/internal/domain"
)

// SummaryParser extracts a structured pass/fail summary from raw combined
// framework output. Parsing is best-effort: many valid runs produce output
// no strategy can read, and that is not an error.
type SummaryParser struct{}

// NewSummaryParser creates a new SummaryParser.
func NewSummaryParser() *SummaryParser {
	return &SummaryParser{}
}

// strategy attempts one extraction. A malformed match reports no match.
type strategy func(output string) (*domain.Summary, bool)

// Parse runs the strategies for a grammar in order and returns the first
// successful extraction, or nil when no summary is available.
func (p *SummaryParser) Parse(output, grammar string) *domain.Summary {
	strategies := []strategy{parseEmbeddedJSON, grammarStrategy(grammar)}
	for _, s := range strategies {
		if s == nil {
			continue
		}
		if sum, ok := s(output); ok {
			return sum
		}
	}
	return nil
}

const jsonMarker = `"numTotalTests"`

var (
	jsonTotalRe   = regexp.MustCompile(`"numTotalTests"\s*:\s*(\d*)`)
	jsonPassedRe  = regexp.MustCompile(`"numPassedTests"\s*:\s*(\d*)`)
	jsonFailedRe  = regexp.MustCompile(`"numFailedTests"\s*:\s*(\d*)`)
	jsonPendingRe = regexp.MustCompile(`"numPendingTests"\s*:\s*(\d*)`)
)

// parseEmbeddedJSON reads a JSON-shaped summary embedded anywhere in the
// output, detected by the marker key. Absent or empty fields count as zero.
func parseEmbeddedJSON(output string) (*domain.Summary, bool) {
	if !strings.Contains(output, jsonMarker) {
		return nil, false
	}
	return &domain.Summary{
		Total:   captureInt(jsonTotalRe, output),
		Passed:  captureInt(jsonPassedRe, output),
		Failed:  captureInt(jsonFailedRe, output),
		Skipped: captureInt(jsonPendingRe, output),
	}, true
}

func grammarStrategy(grammar string) strategy {
	switch grammar {
	case "jest":
		return parseJestText
	case "mocha":
		return parseMochaText
	case "pytest":
		return parsePytestText
	case "phpunit":
		return parsePHPUnitText
	case "junit":
		return parseJUnitText
	case "gotest":
		return parseGoTestText
	}
	return nil
}

var (
	jestLineRe    = regexp.MustCompile(`(?m)^Tests:.*$`)
	jestPassedRe  = regexp.MustCompile(`(\d+) passed`)
	jestFailedRe  = regexp.MustCompile(`(\d+) failed`)
	jestSkippedRe = regexp.MustCompile(`(\d+) skipped`)
	jestTotalRe   = regexp.MustCompile(`(\d+) total`)
)

// parseJestText reads the "Tests: 1 failed, 3 passed, 4 total" summary line.
func parseJestText(output string) (*domain.Summary, bool) {
	line := jestLineRe.FindString(output)
	if line == "" {
		return nil, false
	}
	sum := &domain.Summary{
		Total:   captureInt(jestTotalRe, line),
		Passed:  captureInt(jestPassedRe, line),
		Failed:  captureInt(jestFailedRe, line),
		Skipped: captureInt(jestSkippedRe, line),
	}
	if sum.Total == 0 {
		sum.Total = sum.Passed + sum.Failed + sum.Skipped
	}
	return sum, sum.Total > 0
}

var (
	mochaPassingRe = regexp.MustCompile(`(\d+) passing`)
	mochaFailingRe = regexp.MustCompile(`(\d+) failing`)
	mochaPendingRe = regexp.MustCompile(`(\d+) pending`)
)

func parseMochaText(output string) (*domain.Summary, bool) {
	if !mochaPassingRe.MatchString(output) && !mochaFailingRe.MatchString(output) {
		return nil, false
	}
	sum := &domain.Summary{
		Passed:  captureInt(mochaPassingRe, output),
		Failed:  captureInt(mochaFailingRe, output),
		Skipped: captureInt(mochaPendingRe, output),
	}
	sum.Total = sum.Passed + sum.Failed + sum.Skipped
	return sum, true
}

var (
	pytestPassedRe  = regexp.MustCompile(`(\d+) passed`)
	pytestFailedRe  = regexp.MustCompile(`(\d+) failed`)
	pytestSkippedRe = regexp.MustCompile(`(\d+) skipped`)
	pytestErrorRe   = regexp.MustCompile(`(\d+) error`)
)

// parsePytestText reads the final "== 3 passed, 1 failed, 2 skipped in … =="
// line. Errors count as failures.
func parsePytestText(output string) (*domain.Summary, bool) {
	if !pytestPassedRe.MatchString(output) && !pytestFailedRe.MatchString(output) &&
		!pytestErrorRe.MatchString(output) {
		return nil, false
	}
	sum := &domain.Summary{
		Passed:  captureInt(pytestPassedRe, output),
		Failed:  captureInt(pytestFailedRe, output) + captureInt(pytestErrorRe, output),
		Skipped: captureInt(pytestSkippedRe, output),
	}
	sum.Total = sum.Passed + sum.Failed + sum.Skipped
	return sum, true
}

var (
	phpunitOKRe       = regexp.MustCompile(`OK\s*\(\s*(\d+)\s+tests?`)
	phpunitTestsRe    = regexp.MustCompile(`Tests:\s*(\d+)`)
	phpunitFailuresRe = regexp.MustCompile(`Failures:\s*(\d+)`)
	phpunitErrorsRe   = regexp.MustCompile(`Errors:\s*(\d+)`)
	phpunitSkippedRe  = regexp.MustCompile(`Skipped:\s*(\d+)`)
)

// parsePHPUnitText reads "OK (12 tests, 30 assertions)" or the
// "Tests: 12, Assertions: 30, Failures: 2, Skipped: 1." failure line.
func parsePHPUnitText(output string) (*domain.Summary, bool) {
	if m := phpunitOKRe.FindStringSubmatch(output); len(m) >= 2 {
		total := atoi(m[1])
		return &domain.Summary{Total: total, Passed: total}, true
	}
	total := captureInt(phpunitTestsRe, output)
	if total == 0 {
		return nil, false
	}
	failed := captureInt(phpunitFailuresRe, output) + captureInt(phpunitErrorsRe, output)
	skipped := captureInt(phpunitSkippedRe, output)
	passed := total - failed - skipped
	if passed < 0 {
		passed = 0
	}
	return &domain.Summary{Total: total, Passed: passed, Failed: failed, Skipped: skipped}, true
}

var junitRunRe = regexp.MustCompile(`Tests run:\s*(\d+),\s*Failures:\s*(\d+),\s*Errors:\s*(\d+),\s*Skipped:\s*(\d+)`)

func parseJUnitText(output string) (*domain.Summary, bool) {
	m := junitRunRe.FindStringSubmatch(output)
	if len(m) < 5 {
		return nil, false
	}
	total := atoi(m[1])
	failed := atoi(m[2]) + atoi(m[3])
	skipped := atoi(m[4])
	passed := total - failed - skipped
	if passed < 0 {
		passed = 0
	}
	return &domain.Summary{Total: total, Passed: passed, Failed: failed, Skipped: skipped}, true
}

var (
	goPassRe = regexp.MustCompile(`(?m)^\s*--- PASS`)
	goFailRe = regexp.MustCompile(`(?m)^\s*--- FAIL`)
	goSkipRe = regexp.MustCompile(`(?m)^\s*--- SKIP`)
)

// parseGoTestText counts the per-test verdict lines from go test -v output.
func parseGoTestText(output string) (*domain.Summary, bool) {
	sum := &domain.Summary{
		Passed:  len(goPassRe.FindAllString(output, -1)),
		Failed:  len(goFailRe.FindAllString(output, -1)),
		Skipped: len(goSkipRe.FindAllString(output, -1)),
	}
	sum.Total = sum.Passed + sum.Failed + sum.Skipped
	if sum.Total == 0 {
		return nil, false
	}
	return sum, true
}

// captureInt returns the first captured group as an int, or zero when the
// group is absent or empty.
func captureInt(re *regexp.Regexp, s string) int {
	m := re.FindStringSubmatch(s)
	if len(m) < 2 || m[1] == "" {
		return 0
	}
	return atoi(m[1])
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
