package segmodel

import (
	"github.com/launchdarkly/go-jsonstream/v3/jreader"
)

func unmarshalSegment(data []byte) (Segment, error) {
	r := jreader.NewReader(data)
	ret := readSegment(&r)
	if err := r.Error(); err != nil {
		return Segment{}, err
	}
	PreprocessSegment(&ret)
	return ret, nil
}

func unmarshalFilterGroup(data []byte) (FilterGroup, error) {
	r := jreader.NewReader(data)
	ret := readFilterGroup(&r)
	if err := r.Error(); err != nil {
		return nil, err
	}
	PreprocessGroup(ret)
	return ret, nil
}

func unmarshalFilterNode(data []byte) (FilterNode, error) {
	r := jreader.NewReader(data)
	ret := readFilterNode(&r)
	if err := r.Error(); err != nil {
		return FilterNode{}, err
	}
	if ret.IsGroup() {
		PreprocessGroup(ret.Group)
	} else {
		ret.Resource.preprocessed = preprocessFilter(&ret.Resource)
	}
	return ret, nil
}

func readSegment(r *jreader.Reader) Segment {
	var ret Segment
	for obj := r.Object(); obj.Next(); {
		switch string(obj.Name()) {
		case "id":
			ret.ID = r.String()
		case "title":
			ret.Title = r.String()
		case "description":
			ret.Description = r.String()
		case "private":
			ret.Private = r.Bool()
		case "filters":
			ret.Filters = readFilterGroup(r)
		case "surveys":
			ret.SurveyIDs = readStringArray(r)
		case "version":
			ret.Version = r.Int()
		case "deleted":
			ret.Deleted = r.Bool()
		}
	}
	return ret
}

func readFilterGroup(r *jreader.Reader) FilterGroup {
	// A group is always non-nil once parsed, even when empty; node code distinguishes
	// leaves from groups by Group being nil.
	ret := FilterGroup{}
	for arr := r.Array(); arr.Next(); {
		ret = append(ret, readFilterNode(r))
	}
	return ret
}

func readFilterNode(r *jreader.Reader) FilterNode {
	var ret FilterNode
	for obj := r.Object(); obj.Next(); {
		switch string(obj.Name()) {
		case "id":
			ret.ID = r.String()
		case "connector":
			if s, nonNull := r.StringOrNull(); nonNull {
				ret.Connector = Connector(s)
			}
		case "group":
			ret.Group = readFilterGroup(r)
		case "resource":
			ret.Resource = readResourceFilter(r)
		}
	}
	return ret
}

func readResourceFilter(r *jreader.Reader) ResourceFilter {
	var ret ResourceFilter
	for obj := r.Object(); obj.Next(); {
		switch string(obj.Name()) {
		case "root":
			for rootObj := r.Object(); rootObj.Next(); {
				switch string(rootObj.Name()) {
				case "kind":
					ret.Root.Kind = ResourceKind(r.String())
				case "attributeClassId":
					ret.Root.AttributeClassID = r.String()
				case "actionClassId":
					ret.Root.ActionClassID = r.String()
				case "segmentId":
					ret.Root.SegmentID = r.String()
				case "deviceType":
					ret.Root.DeviceType = DeviceType(r.String())
				}
			}
		case "qualifier":
			for qualObj := r.Object(); qualObj.Next(); {
				switch string(qualObj.Name()) {
				case "operator":
					ret.Qualifier.Operator = Operator(r.String())
				case "metric":
					ret.Qualifier.Metric = ActionMetric(r.String())
				}
			}
		case "value":
			ret.Value.ReadFromJSONReader(r)
		}
	}
	return ret
}

func readStringArray(r *jreader.Reader) []string {
	var ret []string
	for arr := r.Array(); arr.Next(); {
		ret = append(ret, r.String())
	}
	return ret
}
