package evaluation

import (
	"time"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
	"github.com/launchdarkly/go-sdk-common/v3/ldtime"

	"github.com/surveycove/go-segment-evaluation/internal"
	"github.com/surveycove/go-segment-evaluation/segmodel"
)

// defaultMaxSegmentDepth is the default limit on chains of nested segment references.
// Realistic trees nest one or two levels; the limit exists only as a backstop against
// pathological data that the cycle check cannot catch (a long non-repeating chain).
const defaultMaxSegmentDepth = 20

type evaluator struct {
	dataProvider    DataProvider
	errorLogger     ldlog.BaseLogger
	timeSource      func() time.Time
	maxSegmentDepth int
}

// NewEvaluator creates an Evaluator, specifying a DataProvider that it will use if it
// needs to query other segments referenced by segment filters during an evaluation.
func NewEvaluator(dataProvider DataProvider, options ...EvaluatorOption) Evaluator {
	e := &evaluator{
		dataProvider:    dataProvider,
		timeSource:      time.Now,
		maxSegmentDepth: defaultMaxSegmentDepth,
	}
	for _, o := range options {
		if o != nil {
			o.apply(e)
		}
	}
	return e
}

// Used internally to hold the parameters of an evaluation, to avoid repetitive
// parameter passing. Its methods use a pointer receiver for efficiency, even though it
// is allocated on the stack and its fields are never modified after creation.
type evaluationScope struct {
	owner                *evaluator
	segment              *segmodel.Segment
	person               PersonData
	segmentMatchRecorder SegmentMatchRecorder
	now                  ldtime.UnixMillisecondTime
}

// Implementation of the Evaluator interface.
func (e *evaluator) Evaluate(
	segment *segmodel.Segment,
	person PersonData,
	segmentMatchRecorder SegmentMatchRecorder,
) bool {
	es := evaluationScope{
		owner:                e,
		segment:              segment,
		person:               person,
		segmentMatchRecorder: segmentMatchRecorder,
		now:                  ldtime.UnixMillisFromTime(e.timeSource()),
	}

	// Preallocate some space for segmentChain on the stack. We can get up to that many
	// levels of nested segment references before appending to the slice will cause a
	// heap allocation.
	segmentChain := make([]string, 0, 20)

	return es.segmentContainsPerson(segment, segmentChain)
}

// Entry point for evaluating a segment which could be either the original segment or
// one referenced by a segment filter. segmentChain holds the ids of the segments
// already being evaluated further up the stack.
func (es *evaluationScope) segmentContainsPerson(s *segmodel.Segment, segmentChain []string) bool {
	segmentChain = append(segmentChain, s.ID)
	// Note that the change to segmentChain does not persist after returning from this
	// method; each nested reference extends its own copy of the chain, which is exactly
	// the visited set we need for cycle detection on the current path.
	return es.matchFilterGroup(s.Filters, segmentChain)
}

// matchFilterGroup folds a group's children left to right: the first child seeds the
// accumulator and each later child is combined per its own connector. There is no
// operator precedence beyond the explicit nesting in the tree. An empty group matches:
// a segment with no filters includes everyone.
func (es *evaluationScope) matchFilterGroup(g segmodel.FilterGroup, segmentChain []string) bool {
	if len(g) == 0 {
		return true
	}
	acc := es.matchFilterNode(&g[0], segmentChain)
	for i := 1; i < len(g); i++ {
		// Note, taking the address of the slice element here is OK because it's not
		// retained outside the call
		value := es.matchFilterNode(&g[i], segmentChain)
		switch g[i].Connector {
		case segmodel.ConnectorOr:
			acc = acc || value
		case segmodel.ConnectorAnd:
			acc = acc && value
		default:
			// Invariant violation from upstream; surface it and keep going so one bad
			// node does not take down the whole evaluation.
			es.logEvaluationError(internal.MissingConnectorError(g[i].ID))
			acc = acc && value
		}
	}
	return acc
}

func (es *evaluationScope) matchFilterNode(n *segmodel.FilterNode, segmentChain []string) bool {
	if n.IsGroup() {
		return es.matchFilterGroup(n.Group, segmentChain)
	}
	return es.matchResourceFilter(&n.Resource, segmentChain)
}

func (es *evaluationScope) matchResourceFilter(f *segmodel.ResourceFilter, segmentChain []string) bool {
	if !segmodel.OperatorIsValidForKind(f.Qualifier.Operator, f.Root.Kind) {
		es.logEvaluationError(internal.BadFilterOperatorError{
			Operator: string(f.Qualifier.Operator),
			Kind:     string(f.Root.Kind),
		})
		return false
	}
	switch f.Root.Kind {
	case segmodel.KindAttribute:
		value, present := es.person.Attributes[f.Root.AttributeClassID]
		return segmodel.AttributeMatchesFilter(f, value, present)
	case segmodel.KindAction:
		return es.matchActionFilter(f)
	case segmodel.KindSegment:
		return es.matchSegmentFilter(f, segmentChain)
	case segmodel.KindDevice:
		return matchDeviceFilter(f, es.person.Device)
	default:
		es.logEvaluationError(internal.BadResourceKindError(f.Root.Kind))
		return false
	}
}

func (es *evaluationScope) matchActionFilter(f *segmodel.ResourceFilter) bool {
	if !segmodel.MetricIsValid(f.Qualifier.Metric) {
		es.logEvaluationError(internal.BadActionMetricError(f.Qualifier.Metric))
		return false
	}
	occurrences := es.person.actionTimestamps(f.Root.ActionClassID)
	metricValue, ok := segmodel.ActionMetricValue(occurrences, f.Qualifier.Metric, es.now)
	if !ok {
		// days-ago metrics are undefined for a person who never performed the action
		return false
	}
	return segmodel.NumericOperatorMatches(f.Qualifier.Operator, metricValue, f.Value)
}

// matchSegmentFilter resolves a nested segment reference. A reference back into the
// chain of segments already being evaluated would recurse forever; it is treated as
// non-matching regardless of the operator, and logged, rather than failing the whole
// evaluation.
func (es *evaluationScope) matchSegmentFilter(f *segmodel.ResourceFilter, segmentChain []string) bool {
	for _, id := range segmentChain {
		if f.Root.SegmentID == id {
			es.logEvaluationError(internal.CircularSegmentReferenceError(f.Root.SegmentID))
			return false
		}
	}
	if len(segmentChain) >= es.owner.maxSegmentDepth {
		es.logEvaluationError(internal.SegmentDepthError(es.owner.maxSegmentDepth))
		return false
	}

	referenced := es.owner.dataProvider.GetSegment(f.Root.SegmentID)
	membership := false
	if referenced != nil {
		subScope := *es
		subScope.segment = referenced
		membership = subScope.segmentContainsPerson(referenced, segmentChain)
	}

	if es.segmentMatchRecorder != nil {
		event := SegmentMatchEvent{
			TargetSegmentID:   es.segment.ID,
			ReferencedSegment: referenced,
			Match:             membership,
		}
		es.segmentMatchRecorder(event)
	}

	if f.Qualifier.Operator == segmodel.OperatorUserIsNotIn {
		return !membership
	}
	return membership
}

func matchDeviceFilter(f *segmodel.ResourceFilter, device segmodel.DeviceType) bool {
	if f.Qualifier.Operator == segmodel.OperatorNotEquals {
		return device != f.Root.DeviceType
	}
	return device == f.Root.DeviceType
}

func (es *evaluationScope) logEvaluationError(err error) {
	if err == nil || es.owner.errorLogger == nil {
		return
	}
	es.owner.errorLogger.Printf("Error evaluating segment %q: %s",
		es.segment.ID,
		err,
	)
}
