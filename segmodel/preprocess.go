package segmodel

import (
	"github.com/launchdarkly/go-semver"
)

type filterPreprocessedData struct {
	// valuesMap indexes the filter's selected values for the multi-value operators.
	valuesMap map[string]bool
	// parsedSemver is the filter value parsed as a semantic version, for the semver
	// operators.
	parsedSemver semver.Version
	semverValid  bool
	semverParsed bool
}

// PreprocessSegment precomputes internal data structures based on the segment's filter
// tree, to speed up evaluations.
//
// This is called once after a segment is deserialized from JSON, or is created with
// segbuilders. If you construct a segment by some other means, you should call
// PreprocessSegment exactly once before making it available to any other code. The
// method is not safe for concurrent access across goroutines.
func PreprocessSegment(s *Segment) {
	PreprocessGroup(s.Filters)
}

// PreprocessGroup is the filter-tree part of PreprocessSegment, for callers holding a
// bare tree rather than a whole segment.
func PreprocessGroup(g FilterGroup) {
	for i := range g {
		if g[i].IsGroup() {
			PreprocessGroup(g[i].Group)
		} else {
			g[i].Resource.preprocessed = preprocessFilter(&g[i].Resource)
		}
	}
}

func preprocessFilter(f *ResourceFilter) filterPreprocessedData {
	ret := filterPreprocessedData{}
	switch {
	case IsMultiValueOperator(f.Qualifier.Operator):
		if n := f.Value.Count(); n > 0 {
			m := make(map[string]bool, n)
			ok := true
			for i := 0; i < n; i++ {
				key, valid := valueKey(f.Value.GetByIndex(i))
				if !valid {
					ok = false
					break
				}
				m[key] = true
			}
			if ok {
				ret.valuesMap = m
			}
		}
	case f.Qualifier.Operator == OperatorSemVerEquals,
		f.Qualifier.Operator == OperatorSemVerLessThan,
		f.Qualifier.Operator == OperatorSemVerGreaterThan:
		ret.parsedSemver, ret.semverValid = parseSemVer(f.Value)
		ret.semverParsed = true
	}
	return ret
}
