package evaluation

import (
	"github.com/launchdarkly/go-sdk-common/v3/ldtime"
	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"

	"github.com/surveycove/go-segment-evaluation/segmodel"
)

// PersonData is the snapshot of one person's state that a segment is evaluated against.
// It is plain data assembled by the caller; the evaluator never fetches person state
// itself.
type PersonData struct {
	// PersonID is the person's unique identifier. It is informational only; no filter
	// kind tests it directly.
	PersonID string
	// Attributes holds the person's attribute values keyed by attribute class id. A
	// missing key means the attribute is not set.
	Attributes map[string]ldvalue.Value
	// Actions is the person's recorded action occurrences, in any order.
	Actions []ActionOccurrence
	// Device is the person's device type for this evaluation.
	Device segmodel.DeviceType
}

// ActionOccurrence is a single recorded occurrence of a tracked action.
type ActionOccurrence struct {
	// ActionClassID identifies which action occurred.
	ActionClassID string
	// Timestamp is when the action occurred.
	Timestamp ldtime.UnixMillisecondTime
}

// actionTimestamps collects the occurrence timestamps for one action class.
func (p *PersonData) actionTimestamps(actionClassID string) []ldtime.UnixMillisecondTime {
	var ret []ldtime.UnixMillisecondTime
	for _, o := range p.Actions {
		if o.ActionClassID == actionClassID {
			ret = append(ret, o.Timestamp)
		}
	}
	return ret
}
