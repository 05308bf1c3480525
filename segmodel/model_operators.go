package segmodel

// Operator is a comparison operator that can appear in a filter's qualifier.
type Operator string

const (
	// OperatorEquals matches if the tested value equals the filter value.
	OperatorEquals Operator = "equals"
	// OperatorNotEquals matches if the tested value does not equal the filter value.
	OperatorNotEquals Operator = "notEquals"
	// OperatorLessThan matches if the tested numeric value is less than the filter value.
	OperatorLessThan Operator = "lessThan"
	// OperatorLessEqual matches if the tested numeric value is less than or equal to the filter value.
	OperatorLessEqual Operator = "lessEqual"
	// OperatorGreaterThan matches if the tested numeric value is greater than the filter value.
	OperatorGreaterThan Operator = "greaterThan"
	// OperatorGreaterEqual matches if the tested numeric value is greater than or equal to the filter value.
	OperatorGreaterEqual Operator = "greaterEqual"
	// OperatorContains matches if the tested string contains the filter value as a substring.
	OperatorContains Operator = "contains"
	// OperatorDoesNotContain matches if the tested string does not contain the filter value.
	OperatorDoesNotContain Operator = "doesNotContain"
	// OperatorStartsWith matches if the tested string starts with the filter value.
	OperatorStartsWith Operator = "startsWith"
	// OperatorEndsWith matches if the tested string ends with the filter value.
	OperatorEndsWith Operator = "endsWith"
	// OperatorIsSet matches if the attribute has any value at all. The filter value is ignored.
	OperatorIsSet Operator = "isSet"
	// OperatorIsNotSet matches if the attribute has no value. The filter value is ignored.
	OperatorIsNotSet Operator = "isNotSet"
	// OperatorIncludesAll matches if the tested value includes every one of the filter's
	// selected values. The filter value is an array.
	OperatorIncludesAll Operator = "includesAll"
	// OperatorIncludesOne matches if the tested value includes at least one of the filter's
	// selected values. The filter value is an array.
	OperatorIncludesOne Operator = "includesOne"
	// OperatorSemVerEquals matches if the tested value is a semantic version equal to the
	// filter value.
	OperatorSemVerEquals Operator = "semVerEquals"
	// OperatorSemVerLessThan matches if the tested value is a semantic version lower than
	// the filter value.
	OperatorSemVerLessThan Operator = "semVerLessThan"
	// OperatorSemVerGreaterThan matches if the tested value is a semantic version higher
	// than the filter value.
	OperatorSemVerGreaterThan Operator = "semVerGreaterThan"
	// OperatorUserIsIn matches if the person is a member of the referenced segment.
	OperatorUserIsIn Operator = "userIsIn"
	// OperatorUserIsNotIn matches if the person is not a member of the referenced segment.
	OperatorUserIsNotIn Operator = "userIsNotIn"
)

// ActionMetric selects which derived statistic of an action's occurrence history an
// action filter's operator compares against the filter value.
type ActionMetric string

const (
	// MetricOccurrenceCount is the total number of occurrences.
	MetricOccurrenceCount ActionMetric = "occuranceCount"
	// MetricLastQuarterCount is the number of occurrences in the last 90 days.
	MetricLastQuarterCount ActionMetric = "lastQuarterCount"
	// MetricLastMonthCount is the number of occurrences in the last 30 days.
	MetricLastMonthCount ActionMetric = "lastMonthCount"
	// MetricLastWeekCount is the number of occurrences in the last 7 days.
	MetricLastWeekCount ActionMetric = "lastWeekCount"
	// MetricLastOccurrenceDaysAgo is the number of whole days since the most recent occurrence.
	MetricLastOccurrenceDaysAgo ActionMetric = "lastOccurranceDaysAgo"
	// MetricFirstOccurrenceDaysAgo is the number of whole days since the first occurrence.
	MetricFirstOccurrenceDaysAgo ActionMetric = "firstOccurranceDaysAgo"
)

// The spellings of MetricOccurrenceCount, MetricLastOccurrenceDaysAgo and
// MetricFirstOccurrenceDaysAgo are part of the persisted JSON schema and cannot be
// corrected without a data migration.

// IsMultiValueOperator returns true for operators whose filter value is an array of
// selected values rather than a single scalar. Switching a filter's operator across
// this boundary resets its value.
func IsMultiValueOperator(op Operator) bool {
	return op == OperatorIncludesAll || op == OperatorIncludesOne
}

// IsUnaryOperator returns true for operators that ignore the filter value entirely.
func IsUnaryOperator(op Operator) bool {
	return op == OperatorIsSet || op == OperatorIsNotSet
}

var attributeOperators = map[Operator]bool{ //nolint:gochecknoglobals
	OperatorEquals:            true,
	OperatorNotEquals:         true,
	OperatorLessThan:          true,
	OperatorLessEqual:         true,
	OperatorGreaterThan:       true,
	OperatorGreaterEqual:      true,
	OperatorContains:          true,
	OperatorDoesNotContain:    true,
	OperatorStartsWith:        true,
	OperatorEndsWith:          true,
	OperatorIsSet:             true,
	OperatorIsNotSet:          true,
	OperatorIncludesAll:       true,
	OperatorIncludesOne:       true,
	OperatorSemVerEquals:      true,
	OperatorSemVerLessThan:    true,
	OperatorSemVerGreaterThan: true,
}

var actionOperators = map[Operator]bool{ //nolint:gochecknoglobals
	OperatorEquals:       true,
	OperatorNotEquals:    true,
	OperatorLessThan:     true,
	OperatorLessEqual:    true,
	OperatorGreaterThan:  true,
	OperatorGreaterEqual: true,
}

// OperatorIsValidForKind reports whether op can appear on a filter of the given resource
// kind. Segment and device filters accept only their fixed operator sets.
func OperatorIsValidForKind(op Operator, kind ResourceKind) bool {
	switch kind {
	case KindAttribute:
		return attributeOperators[op]
	case KindAction:
		return actionOperators[op]
	case KindSegment:
		return op == OperatorUserIsIn || op == OperatorUserIsNotIn
	case KindDevice:
		return op == OperatorEquals || op == OperatorNotEquals
	default:
		return false
	}
}

// MetricIsValid reports whether m is one of the defined action metrics.
func MetricIsValid(m ActionMetric) bool {
	switch m {
	case MetricOccurrenceCount, MetricLastQuarterCount, MetricLastMonthCount,
		MetricLastWeekCount, MetricLastOccurrenceDaysAgo, MetricFirstOccurrenceDaysAgo:
		return true
	}
	return false
}
