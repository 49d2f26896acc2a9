package source

import (
	"fmt"
	"sllist/util"
	"strings"

	"github.com/gobwas/glob"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

type Filter struct {
	includePatterns []glob.Glob
	excludePatterns []glob.Glob
	ignoreCase      bool
}

func NewFilter(includePatterns []string, excludePatterns []string, ignoreCase bool) (*Filter, error) {
	filter := &Filter{ignoreCase: ignoreCase}

	var err error
	filter.includePatterns, err = compileGlobs(includePatterns, "include", ignoreCase)
	if err != nil {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_PATTERN,
			InternalError: fmt.Errorf("failed to compile include patterns '%v': %v", includePatterns, err),
		}
	}
	filter.excludePatterns, err = compileGlobs(excludePatterns, "exclude", ignoreCase)
	if err != nil {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_PATTERN,
			InternalError: fmt.Errorf("failed to compile exclude patterns '%v': %v", excludePatterns, err),
		}
	}
	return filter, nil
}

func expandPatternsIfNeeded(patterns []string) []string {
	for _, pattern := range patterns {
		if strings.HasPrefix(pattern, "*/") {
			patterns = append(patterns, strings.Replace(pattern, "*/", "", 1))
		}
		if strings.HasPrefix(pattern, "**/") {
			patterns = append(patterns, strings.Replace(pattern, "**/", "", 1))
		}
	}
	return patterns
}

func compileGlobs(patterns []string, title string, ignoreCase bool) ([]glob.Glob, error) {
	patterns = expandPatternsIfNeeded(patterns)
	if ignoreCase {
		patterns = lo.Map(patterns, func(pattern string, _ int) string {
			return strings.ToLower(pattern)
		})
	}
	logrus.Debugf("%v %v patterns: %v", len(patterns), title, strings.Join(patterns, ", "))
	globs := make([]glob.Glob, len(patterns))
	for i, pattern := range patterns {
		compiled, err := glob.Compile(pattern)
		if err != nil {
			return nil, err
		}
		globs[i] = compiled
	}
	return globs, nil
}

func matches(value string, patterns []glob.Glob) bool {
	return lo.ContainsBy(patterns, func(pattern glob.Glob) bool {
		return pattern.Match(value)
	})
}

// Keep reports whether value passes the filter. A value matching an include
// pattern is kept even if it also matches an exclude pattern.
func (filter *Filter) Keep(value string) bool {
	valueToCheck := value
	if filter.ignoreCase {
		valueToCheck = strings.ToLower(valueToCheck)
	}

	if len(filter.includePatterns) > 0 {
		if matches(valueToCheck, filter.includePatterns) {
			return true
		}
		logrus.Debugf("--- skipping '%v' - not matching include patterns", value)
		return false
	}

	if matches(valueToCheck, filter.excludePatterns) {
		logrus.Debugf("--- skipping '%v' - matching exclude patterns", value)
		return false
	}
	return true
}

// Apply returns the values that pass the filter, keeping their order.
func (filter *Filter) Apply(values []string) []string {
	return lo.Filter(values, func(value string, _ int) bool {
		return filter.Keep(value)
	})
}
