package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"

	"github.com/surveycove/go-segment-evaluation/segbuilders"
	"github.com/surveycove/go-segment-evaluation/segmodel"
)

func personWithActions(days ...int) PersonData {
	person := basicPerson()
	for _, d := range days {
		person.Actions = append(person.Actions, ActionOccurrence{
			ActionClassID: "clickedCta",
			Timestamp:     daysBefore(d),
		})
	}
	return person
}

func TestActionOccurrenceCountComparison(t *testing.T) {
	evaluator := NewEvaluator(basicDataProvider(), fixedTimeSource(testTime))

	segment := segbuilders.NewSegmentBuilder("seg1").
		AddFilter(segbuilders.ActionFilter("clickedCta", segmodel.MetricOccurrenceCount,
			segmodel.OperatorGreaterEqual, ldvalue.Int(3))).
		Build()

	assert.True(t, evaluator.Evaluate(&segment, personWithActions(1, 10, 100), nil))
	assert.False(t, evaluator.Evaluate(&segment, personWithActions(1, 10), nil))
	assert.False(t, evaluator.Evaluate(&segment, basicPerson(), nil))
}

func TestActionWindowedCounts(t *testing.T) {
	evaluator := NewEvaluator(basicDataProvider(), fixedTimeSource(testTime))
	person := personWithActions(1, 5, 20, 60, 200)

	lastWeek := segbuilders.NewSegmentBuilder("seg1").
		AddFilter(segbuilders.ActionFilter("clickedCta", segmodel.MetricLastWeekCount,
			segmodel.OperatorEquals, ldvalue.Int(2))).
		Build()
	assert.True(t, evaluator.Evaluate(&lastWeek, person, nil))

	lastMonth := segbuilders.NewSegmentBuilder("seg2").
		AddFilter(segbuilders.ActionFilter("clickedCta", segmodel.MetricLastMonthCount,
			segmodel.OperatorEquals, ldvalue.Int(3))).
		Build()
	assert.True(t, evaluator.Evaluate(&lastMonth, person, nil))

	lastQuarter := segbuilders.NewSegmentBuilder("seg3").
		AddFilter(segbuilders.ActionFilter("clickedCta", segmodel.MetricLastQuarterCount,
			segmodel.OperatorEquals, ldvalue.Int(4))).
		Build()
	assert.True(t, evaluator.Evaluate(&lastQuarter, person, nil))
}

func TestActionDaysAgoMetrics(t *testing.T) {
	evaluator := NewEvaluator(basicDataProvider(), fixedTimeSource(testTime))
	person := personWithActions(3, 30)

	lastRecent := segbuilders.NewSegmentBuilder("seg1").
		AddFilter(segbuilders.ActionFilter("clickedCta", segmodel.MetricLastOccurrenceDaysAgo,
			segmodel.OperatorLessEqual, ldvalue.Int(7))).
		Build()
	assert.True(t, evaluator.Evaluate(&lastRecent, person, nil))

	firstLongAgo := segbuilders.NewSegmentBuilder("seg2").
		AddFilter(segbuilders.ActionFilter("clickedCta", segmodel.MetricFirstOccurrenceDaysAgo,
			segmodel.OperatorGreaterEqual, ldvalue.Int(30))).
		Build()
	assert.True(t, evaluator.Evaluate(&firstLongAgo, person, nil))
}

func TestActionDaysAgoNeverMatchesPersonWithoutOccurrences(t *testing.T) {
	evaluator := NewEvaluator(basicDataProvider(), fixedTimeSource(testTime))

	// "has not done X in the last 30 days" cannot match someone who never did X at
	// all; the metric is undefined for them
	segment := segbuilders.NewSegmentBuilder("seg1").
		AddFilter(segbuilders.ActionFilter("clickedCta", segmodel.MetricLastOccurrenceDaysAgo,
			segmodel.OperatorGreaterThan, ldvalue.Int(30))).
		Build()

	assert.False(t, evaluator.Evaluate(&segment, basicPerson(), nil))
}

func TestActionFilterIgnoresOtherActionClasses(t *testing.T) {
	evaluator := NewEvaluator(basicDataProvider(), fixedTimeSource(testTime))

	person := basicPerson()
	person.Actions = []ActionOccurrence{
		{ActionClassID: "clickedCta", Timestamp: daysBefore(1)},
		{ActionClassID: "viewedPricing", Timestamp: daysBefore(1)},
		{ActionClassID: "viewedPricing", Timestamp: daysBefore(2)},
	}

	segment := segbuilders.NewSegmentBuilder("seg1").
		AddFilter(segbuilders.ActionFilter("viewedPricing", segmodel.MetricOccurrenceCount,
			segmodel.OperatorEquals, ldvalue.Int(2))).
		Build()

	assert.True(t, evaluator.Evaluate(&segment, person, nil))
}

func TestActionFilterWithBadMetricLogsAndDoesNotMatch(t *testing.T) {
	logger := &capturingLogger{}
	evaluator := NewEvaluator(basicDataProvider(),
		fixedTimeSource(testTime), EvaluatorOptionErrorLogger(logger))

	segment := segbuilders.NewSegmentBuilder("seg1").
		AddFilter(segbuilders.ActionFilter("clickedCta", segmodel.ActionMetric("mystery"),
			segmodel.OperatorEquals, ldvalue.Int(1))).
		Build()

	assert.False(t, evaluator.Evaluate(&segment, personWithActions(1), nil))
	assert.Len(t, logger.output, 1)
}
