package evaluation

import (
	"time"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
)

// EvaluatorOption is an optional parameter for NewEvaluator.
type EvaluatorOption interface {
	apply(e *evaluator)
}

type evaluatorOptionErrorLogger struct{ errorLogger ldlog.BaseLogger }

// EvaluatorOptionErrorLogger is an option for NewEvaluator that specifies a logger for
// error reporting. The Evaluator will only log errors for conditions that should not be
// possible and require investigation, such as a malformed filter or a circular segment
// reference. If the parameter is nil, no logging is done.
func EvaluatorOptionErrorLogger(errorLogger ldlog.BaseLogger) EvaluatorOption {
	return evaluatorOptionErrorLogger{errorLogger: errorLogger}
}

func (o evaluatorOptionErrorLogger) apply(e *evaluator) {
	e.errorLogger = o.errorLogger
}

type evaluatorOptionTimeSource struct{ timeSource func() time.Time }

// EvaluatorOptionTimeSource is an option for NewEvaluator that specifies the clock used
// by action metrics such as "occurrences in the last week". The default is time.Now.
// This is intended for testing, and for batch jobs that evaluate historical snapshots.
func EvaluatorOptionTimeSource(timeSource func() time.Time) EvaluatorOption {
	return evaluatorOptionTimeSource{timeSource: timeSource}
}

func (o evaluatorOptionTimeSource) apply(e *evaluator) {
	if o.timeSource != nil {
		e.timeSource = o.timeSource
	}
}

type evaluatorOptionMaxSegmentDepth struct{ maxDepth int }

// EvaluatorOptionMaxSegmentDepth is an option for NewEvaluator that overrides the limit
// on how deeply segment-reference filters may nest. A reference deeper than the limit
// evaluates to non-matching. Values less than 1 are ignored.
func EvaluatorOptionMaxSegmentDepth(maxDepth int) EvaluatorOption {
	return evaluatorOptionMaxSegmentDepth{maxDepth: maxDepth}
}

func (o evaluatorOptionMaxSegmentDepth) apply(e *evaluator) {
	if o.maxDepth >= 1 {
		e.maxSegmentDepth = o.maxDepth
	}
}
