package evaluation

import (
	"fmt"
	"testing"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"

	"github.com/surveycove/go-segment-evaluation/segbuilders"
	"github.com/surveycove/go-segment-evaluation/segmodel"
)

var evalBenchmarkResult bool //nolint:gochecknoglobals

func makeBenchmarkSegment(numFilters, nestingDepth int) segmodel.Segment {
	b := segbuilders.NewSegmentBuilder("benchmark-segment")
	for i := 0; i < numFilters; i++ {
		b.AddFilter(segbuilders.AttributeFilter(fmt.Sprintf("attr%d", i),
			segmodel.OperatorEquals, ldvalue.String("value")))
	}
	if nestingDepth > 0 {
		node := segbuilders.AttributeFilter("attr0", segmodel.OperatorEquals, ldvalue.String("value"))
		for i := 0; i < nestingDepth; i++ {
			node = segbuilders.Group(node)
		}
		b.AddFilter(node)
	}
	return b.Build()
}

func makeBenchmarkPerson(numFilters int) PersonData {
	attrs := make(map[string]ldvalue.Value, numFilters)
	for i := 0; i < numFilters; i++ {
		attrs[fmt.Sprintf("attr%d", i)] = ldvalue.String("value")
	}
	return PersonData{PersonID: "person1", Attributes: attrs, Device: segmodel.DevicePhone}
}

func BenchmarkEvaluateFlatGroup(b *testing.B) {
	for _, numFilters := range []int{1, 10, 100} {
		b.Run(fmt.Sprintf("%d filters", numFilters), func(b *testing.B) {
			segment := makeBenchmarkSegment(numFilters, 0)
			person := makeBenchmarkPerson(numFilters)
			evaluator := NewEvaluator(basicDataProvider())
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				evalBenchmarkResult = evaluator.Evaluate(&segment, person, nil)
			}
		})
	}
}

func BenchmarkEvaluateNestedGroups(b *testing.B) {
	for _, depth := range []int{1, 5, 20} {
		b.Run(fmt.Sprintf("depth %d", depth), func(b *testing.B) {
			segment := makeBenchmarkSegment(0, depth)
			person := makeBenchmarkPerson(1)
			evaluator := NewEvaluator(basicDataProvider())
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				evalBenchmarkResult = evaluator.Evaluate(&segment, person, nil)
			}
		})
	}
}

func BenchmarkEvaluateSegmentReference(b *testing.B) {
	inner := makeBenchmarkSegment(10, 0)
	outer := segbuilders.NewSegmentBuilder("outer").
		AddFilter(segbuilders.SegmentFilter("benchmark-segment", segmodel.OperatorUserIsIn)).
		Build()
	person := makeBenchmarkPerson(10)
	evaluator := NewEvaluator(basicDataProvider().withStoredSegments(inner))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		evalBenchmarkResult = evaluator.Evaluate(&outer, person, nil)
	}
}
