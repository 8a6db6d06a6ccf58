package hexiter

import (
	"fmt"
	"regexp"
)

var (
	// defaultMatcher matches a table file with the format: keys.yaml or test_vectors.yml.
	defaultMatcher = NewRegexMatcher(regexp.MustCompile(`^([a-z0-9_-]+)\.ya?ml$`))
)

// FileMatcher is an interface that is used to check if a given file in a directory structure
// is a match, and should be parsed.
// It also provides a way to get the table name from the file name.
type FileMatcher interface {
	IsMatch(name string) bool
	TableName(name string) (string, error)
}

// NewRegexMatcher creates a new RegexMatcher with the given regex.
func NewRegexMatcher(re *regexp.Regexp) *RegexMatcher {
	return &RegexMatcher{re: re}
}

// RegexMatcher matches all files in the directory that match the regex.
// The first capture group is used as the table name.
type RegexMatcher struct {
	re *regexp.Regexp
}

func (m *RegexMatcher) IsMatch(name string) bool {
	return m.re.MatchString(name)
}

func (m *RegexMatcher) TableName(name string) (string, error) {
	match := m.re.FindStringSubmatch(name)
	if match == nil || len(match) < 2 {
		return "", fmt.Errorf("regex is missing a capture group")
	}

	if match[1] == "" {
		return "", fmt.Errorf("empty table name in %q", name)
	}

	return match[1], nil
}
