package segmodel

import (
	"strings"

	"github.com/launchdarkly/go-sdk-common/v3/ldtime"
	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
)

// AttributeMatchesFilter tests a person attribute value against an attribute filter.
// The present flag says whether the person has the attribute at all; when it is false,
// value is ignored and only the isSet/isNotSet operators can match.
//
// This part of the evaluation logic lives in segmodel and is exported, rather than
// being internal to the evaluator, as a compromise to allow for optimizations that
// require storing precomputed data in the model object.
//
// The filter is passed by reference for efficiency only; the function will not modify
// it. Passing a nil filter will cause a panic. An operator that is unknown or
// inapplicable never matches.
func AttributeMatchesFilter(f *ResourceFilter, value ldvalue.Value, present bool) bool {
	switch f.Qualifier.Operator {
	case OperatorIsSet:
		return present
	case OperatorIsNotSet:
		return !present
	}
	if !present || value.IsNull() {
		// a missing attribute is an automatic non-match for every other operator
		return false
	}
	if IsMultiValueOperator(f.Qualifier.Operator) {
		return matchMultiValue(f, value)
	}
	matchFn := operatorFn(f.Qualifier.Operator)
	if value.Type() == ldvalue.ArrayType {
		// a multi-valued attribute matches if any element does
		for i := 0; i < value.Count(); i++ {
			if matchFn(value.GetByIndex(i), f.Value, f.preprocessed) {
				return true
			}
		}
		return false
	}
	return matchFn(value, f.Value, f.preprocessed)
}

// NumericOperatorMatches applies a numeric comparison operator to an already-computed
// number, against the filter's value. It is used for action metric comparisons, where
// the left-hand side is a derived statistic rather than an attribute.
func NumericOperatorMatches(op Operator, n float64, filterValue ldvalue.Value) bool {
	target, ok := parseNumber(filterValue)
	if !ok {
		return false
	}
	switch op {
	case OperatorEquals:
		return n == target
	case OperatorNotEquals:
		return n != target
	case OperatorLessThan:
		return n < target
	case OperatorLessEqual:
		return n <= target
	case OperatorGreaterThan:
		return n > target
	case OperatorGreaterEqual:
		return n >= target
	default:
		return false
	}
}

const millisPerDay = 24 * 60 * 60 * 1000

// ActionMetricValue computes the derived statistic that an action filter's operator
// compares. occurrences is the person's occurrence timestamps for the action class, in
// any order; now is the evaluation time. The second return value is false when the
// metric is undefined for the given history (days-ago metrics with no occurrences), in
// which case the filter cannot match. Count metrics are always defined; with no
// occurrences they are zero.
func ActionMetricValue(
	occurrences []ldtime.UnixMillisecondTime,
	metric ActionMetric,
	now ldtime.UnixMillisecondTime,
) (float64, bool) {
	switch metric {
	case MetricOccurrenceCount:
		return float64(len(occurrences)), true
	case MetricLastWeekCount:
		return countSince(occurrences, now, 7), true
	case MetricLastMonthCount:
		return countSince(occurrences, now, 30), true
	case MetricLastQuarterCount:
		return countSince(occurrences, now, 90), true
	case MetricLastOccurrenceDaysAgo:
		if len(occurrences) == 0 {
			return 0, false
		}
		latest := occurrences[0]
		for _, ts := range occurrences[1:] {
			if ts > latest {
				latest = ts
			}
		}
		return daysAgo(latest, now), true
	case MetricFirstOccurrenceDaysAgo:
		if len(occurrences) == 0 {
			return 0, false
		}
		earliest := occurrences[0]
		for _, ts := range occurrences[1:] {
			if ts < earliest {
				earliest = ts
			}
		}
		return daysAgo(earliest, now), true
	default:
		return 0, false
	}
}

func countSince(occurrences []ldtime.UnixMillisecondTime, now ldtime.UnixMillisecondTime, days uint64) float64 {
	window := days * millisPerDay
	var cutoff ldtime.UnixMillisecondTime
	if uint64(now) > window {
		cutoff = now - ldtime.UnixMillisecondTime(window)
	}
	count := 0
	for _, ts := range occurrences {
		if ts >= cutoff && ts <= now {
			count++
		}
	}
	return float64(count)
}

func daysAgo(ts, now ldtime.UnixMillisecondTime) float64 {
	if ts >= now {
		return 0
	}
	return float64((now - ts) / millisPerDay)
}

func matchMultiValue(f *ResourceFilter, value ldvalue.Value) bool {
	// The filter's selected values are indexed by preprocessing; fall back to a linear
	// scan if preprocessing was skipped or the values were not indexable.
	selectedCount := f.Value.Count()
	if selectedCount == 0 {
		return false
	}
	contains := func(selected ldvalue.Value) bool {
		if value.Type() == ldvalue.ArrayType {
			for i := 0; i < value.Count(); i++ {
				if value.GetByIndex(i).Equal(selected) {
					return true
				}
			}
			return false
		}
		return value.Equal(selected)
	}
	switch f.Qualifier.Operator {
	case OperatorIncludesAll:
		for i := 0; i < selectedCount; i++ {
			if !contains(f.Value.GetByIndex(i)) {
				return false
			}
		}
		return true
	case OperatorIncludesOne:
		if f.preprocessed.valuesMap != nil && value.Type() != ldvalue.ArrayType {
			if key, ok := valueKey(value); ok {
				return f.preprocessed.valuesMap[key]
			}
		}
		for i := 0; i < selectedCount; i++ {
			if contains(f.Value.GetByIndex(i)) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

type opFn func(attrValue, filterValue ldvalue.Value, preprocessed filterPreprocessedData) bool

var allOps = map[Operator]opFn{ //nolint:gochecknoglobals
	OperatorEquals:            operatorEqualsFn,
	OperatorNotEquals:         operatorNotEqualsFn,
	OperatorLessThan:          numericOperatorFn(func(a, b float64) bool { return a < b }),
	OperatorLessEqual:         numericOperatorFn(func(a, b float64) bool { return a <= b }),
	OperatorGreaterThan:       numericOperatorFn(func(a, b float64) bool { return a > b }),
	OperatorGreaterEqual:      numericOperatorFn(func(a, b float64) bool { return a >= b }),
	OperatorContains:          stringOperatorFn(strings.Contains),
	OperatorDoesNotContain:    operatorDoesNotContainFn,
	OperatorStartsWith:        stringOperatorFn(strings.HasPrefix),
	OperatorEndsWith:          stringOperatorFn(strings.HasSuffix),
	OperatorSemVerEquals:      semVerOperatorFn(func(c int) bool { return c == 0 }),
	OperatorSemVerLessThan:    semVerOperatorFn(func(c int) bool { return c < 0 }),
	OperatorSemVerGreaterThan: semVerOperatorFn(func(c int) bool { return c > 0 }),
}

func operatorFn(op Operator) opFn {
	if fn, ok := allOps[op]; ok {
		return fn
	}
	return operatorNoneFn
}

func operatorEqualsFn(attrValue, filterValue ldvalue.Value, _ filterPreprocessedData) bool {
	if attrValue.Type() == ldvalue.NumberType || filterValue.Type() == ldvalue.NumberType {
		a, aOK := parseNumber(attrValue)
		b, bOK := parseNumber(filterValue)
		if aOK && bOK {
			return a == b
		}
	}
	return attrValue.Equal(filterValue)
}

func operatorNotEqualsFn(attrValue, filterValue ldvalue.Value, p filterPreprocessedData) bool {
	return !operatorEqualsFn(attrValue, filterValue, p)
}

func operatorDoesNotContainFn(attrValue, filterValue ldvalue.Value, _ filterPreprocessedData) bool {
	if attrValue.Type() == ldvalue.StringType && filterValue.Type() == ldvalue.StringType {
		return !strings.Contains(attrValue.StringValue(), filterValue.StringValue())
	}
	return false
}

func stringOperatorFn(fn func(a, b string) bool) opFn {
	return func(attrValue, filterValue ldvalue.Value, _ filterPreprocessedData) bool {
		if attrValue.Type() == ldvalue.StringType && filterValue.Type() == ldvalue.StringType {
			return fn(attrValue.StringValue(), filterValue.StringValue())
		}
		return false
	}
}

func numericOperatorFn(fn func(a, b float64) bool) opFn {
	return func(attrValue, filterValue ldvalue.Value, _ filterPreprocessedData) bool {
		a, aOK := parseNumber(attrValue)
		b, bOK := parseNumber(filterValue)
		return aOK && bOK && fn(a, b)
	}
}

func semVerOperatorFn(fn func(c int) bool) opFn {
	return func(attrValue, filterValue ldvalue.Value, preprocessed filterPreprocessedData) bool {
		a, aOK := parseSemVer(attrValue)
		if !aOK {
			return false
		}
		b, bOK := preprocessed.parsedSemver, preprocessed.semverValid
		if !preprocessed.semverParsed {
			b, bOK = parseSemVer(filterValue)
		}
		if !bOK {
			return false
		}
		return fn(a.ComparePrecedence(b))
	}
}

func operatorNoneFn(attrValue, filterValue ldvalue.Value, preprocessed filterPreprocessedData) bool {
	return false
}
