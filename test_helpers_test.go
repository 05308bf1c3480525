package evaluation

import (
	"fmt"
	"time"

	"github.com/launchdarkly/go-sdk-common/v3/ldtime"
	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
	m "github.com/launchdarkly/go-test-helpers/v3/matchers"

	"github.com/surveycove/go-segment-evaluation/segmodel"
)

// segmentMatchEventEquals works the same as an equality assertion but produces better
// failure output for the nested segment pointer.
func segmentMatchEventEquals(expected SegmentMatchEvent) m.Matcher {
	return m.JSONEqual(expected)
}

type simpleDataProvider struct {
	getSegment func(string) *segmodel.Segment
}

func (s *simpleDataProvider) GetSegment(id string) *segmodel.Segment {
	return s.getSegment(id)
}

func (s *simpleDataProvider) withStoredSegments(segments ...segmodel.Segment) *simpleDataProvider {
	return &simpleDataProvider{
		getSegment: func(id string) *segmodel.Segment {
			for i, seg := range segments {
				if seg.ID == id {
					return &segments[i]
				}
			}
			return s.getSegment(id)
		},
	}
}

func (s *simpleDataProvider) withNonexistentSegment(id string) *simpleDataProvider {
	return &simpleDataProvider{
		getSegment: func(requestedID string) *segmodel.Segment {
			if requestedID == id {
				return nil
			}
			return s.getSegment(requestedID)
		},
	}
}

func basicDataProvider() *simpleDataProvider {
	return &simpleDataProvider{
		getSegment: func(id string) *segmodel.Segment {
			panic(fmt.Errorf("unexpected query for segment %q", id))
		},
	}
}

type capturingLogger struct {
	output []string
}

func (l *capturingLogger) Println(values ...interface{}) {
	l.output = append(l.output, fmt.Sprintln(values...))
}

func (l *capturingLogger) Printf(format string, values ...interface{}) {
	l.output = append(l.output, fmt.Sprintf(format, values...))
}

// fixedTimeSource pins the evaluator clock for action metric tests.
func fixedTimeSource(t time.Time) EvaluatorOption {
	return EvaluatorOptionTimeSource(func() time.Time { return t })
}

var testTime = time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC) //nolint:gochecknoglobals

func daysBefore(days int) ldtime.UnixMillisecondTime {
	return ldtime.UnixMillisFromTime(testTime.AddDate(0, 0, -days))
}

func basicPerson() PersonData {
	return PersonData{
		PersonID: "person1",
		Attributes: map[string]ldvalue.Value{
			"email": ldvalue.String("a@b.com"),
			"plan":  ldvalue.String("pro"),
			"seats": ldvalue.Int(5),
		},
		Device: segmodel.DevicePhone,
	}
}
