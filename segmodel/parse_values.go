package segmodel

import (
	"strconv"

	"github.com/launchdarkly/go-semver"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
)

func parseSemVer(value ldvalue.Value) (semver.Version, bool) {
	if value.Type() == ldvalue.StringType {
		versionStr := value.StringValue()
		if sv, err := semver.ParseAs(versionStr, semver.ParseModeAllowMissingMinorAndPatch); err == nil {
			return sv, true
		}
	}
	return semver.Version{}, false
}

// parseNumber accepts either a JSON number or a string containing one. Person attributes
// arrive as strings more often than not, so the numeric operators tolerate both.
func parseNumber(value ldvalue.Value) (float64, bool) {
	switch value.Type() {
	case ldvalue.NumberType:
		return value.Float64Value(), true
	case ldvalue.StringType:
		if n, err := strconv.ParseFloat(value.StringValue(), 64); err == nil {
			return n, true
		}
	}
	return 0, false
}

// valueKey reduces a primitive value to a map key for the multi-value lookup maps built
// by preprocessing. Non-primitive values are not indexable.
func valueKey(value ldvalue.Value) (string, bool) {
	switch value.Type() {
	case ldvalue.StringType:
		return value.StringValue(), true
	case ldvalue.NumberType:
		return strconv.FormatFloat(value.Float64Value(), 'f', -1, 64), true
	}
	return "", false
}
