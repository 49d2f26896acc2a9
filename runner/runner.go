// Package runner builds one list per source and reports what is left in each
// after the requested pops.
package runner

import (
	"errors"
	"fmt"
	"sllist/list"
	"sllist/options"
	"sllist/parallel"
	"sllist/source"
	"sllist/stats"
	"sllist/util"

	"github.com/sirupsen/logrus"
)

// Result is the traversal of one source's list, head first.
type Result struct {
	Name      string
	Popped    []string
	Remaining []string
}

func Run(opts *options.Options) ([]Result, *stats.RunStats, error) {
	filter, err := source.NewFilter(opts.IncludePatterns, opts.ExcludePatterns, opts.IgnoreCasePatterns)
	if err != nil {
		return nil, nil, err
	}

	pending := source.FromOptions(opts)
	if len(pending) == 0 {
		return nil, nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_NO_SOURCES,
			InternalError: fmt.Errorf("no sources to build lists from"),
		}
	}

	results := make([]Result, len(pending))
	counters := make([]stats.SourceStats, len(pending))

	queue := parallel.CreateJobQueue(len(pending), max(opts.Workers, 1))
	defer queue.Close()
	for i := range pending {
		index := i
		err = queue.Add(func() error {
			result, sourceStats, jobErr := build(pending[index], filter, opts.PopCount)
			if jobErr != nil {
				return jobErr
			}
			results[index] = *result
			counters[index] = *sourceStats
			return nil
		})
		if err != nil {
			return nil, nil, err
		}
	}
	err = queue.Wait()
	if err != nil {
		return nil, nil, err
	}

	runStats := stats.NewRunStats()
	for i, result := range results {
		runStats.AddSource(result.Name, counters[i])
	}
	runStats.Finalize()
	return results, runStats, nil
}

// build owns its list for the whole job; lists never cross goroutines.
func build(pending source.Pending, filter *source.Filter, popCount int) (*Result, *stats.SourceStats, error) {
	src, err := pending.Load()
	if err != nil {
		return nil, nil, err
	}

	kept := filter.Apply(src.Values)
	logrus.Debugf("source '%v': read %v values, kept %v", src.Name, len(src.Values), len(kept))

	values := list.FromSlice(kept)
	popped, err := popFront(values, popCount)
	if err != nil {
		return nil, nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_EMPTY_LIST,
			InternalError: fmt.Errorf("source '%v' holds %v values, cannot pop %v: %w", src.Name, len(kept), popCount, err),
		}
	}

	remaining := []string{}
	it := values.Iter()
	for value, ok := it.Next(); ok; value, ok = it.Next() {
		remaining = append(remaining, value)
	}
	logrus.Debugf("source '%v': popped %v, %v remaining", src.Name, len(popped), len(remaining))

	return &Result{
			Name:      src.Name,
			Popped:    popped,
			Remaining: remaining,
		}, &stats.SourceStats{
			ValuesRead:      len(src.Values),
			ValuesKept:      len(kept),
			ValuesPopped:    len(popped),
			ValuesRemaining: len(remaining),
		}, nil
}

// popFront pops count values, turning the empty list panic into an error.
func popFront(values *list.List[string], count int) (popped []string, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		recovered, isError := r.(error)
		if !isError || !errors.Is(recovered, list.ErrEmptyList) {
			panic(r)
		}
		err = recovered
	}()

	popped = []string{}
	for i := 0; i < count; i++ {
		popped = append(popped, values.Pop())
	}
	return popped, nil
}
