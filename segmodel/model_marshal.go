package segmodel

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// Properties with default values are written out rather than dropped: the JSON form of
// a segment is read back by editor frontends and by store integrations that are not
// tolerant of missing properties. The only omitted property is an action filter's
// absent metric.

func marshalSegment(segment Segment) ([]byte, error) {
	w := jwriter.NewWriter()
	marshalSegmentToWriter(segment, &w)
	return w.Bytes(), w.Error()
}

func marshalFilterGroup(group FilterGroup) ([]byte, error) {
	w := jwriter.NewWriter()
	writeFilterGroup(&w, group)
	return w.Bytes(), w.Error()
}

func marshalFilterNode(node FilterNode) ([]byte, error) {
	w := jwriter.NewWriter()
	writeFilterNode(&w, node)
	return w.Bytes(), w.Error()
}

func marshalSegmentToWriter(segment Segment, w *jwriter.Writer) {
	obj := w.Object()

	obj.Name("id").String(segment.ID)
	obj.Name("title").String(segment.Title)
	obj.Name("description").String(segment.Description)
	obj.Name("private").Bool(segment.Private)

	obj.Name("filters")
	writeFilterGroup(w, segment.Filters)

	writeStringArray(&obj, "surveys", segment.SurveyIDs)

	obj.Name("version").Int(segment.Version)
	obj.Name("deleted").Bool(segment.Deleted)

	obj.End()
}

func writeFilterGroup(w *jwriter.Writer, group FilterGroup) {
	arr := w.Array()
	for _, n := range group {
		writeFilterNode(w, n)
	}
	arr.End()
}

func writeFilterNode(w *jwriter.Writer, node FilterNode) {
	obj := w.Object()

	obj.Name("id").String(node.ID)

	obj.Name("connector")
	if node.Connector == ConnectorNone {
		w.Null()
	} else {
		w.String(string(node.Connector))
	}

	if node.IsGroup() {
		obj.Name("group")
		writeFilterGroup(w, node.Group)
	} else {
		obj.Name("resource")
		writeResourceFilter(w, &node.Resource)
	}

	obj.End()
}

func writeResourceFilter(w *jwriter.Writer, f *ResourceFilter) {
	obj := w.Object()

	rootObj := obj.Name("root").Object()
	rootObj.Name("kind").String(string(f.Root.Kind))
	switch f.Root.Kind {
	case KindAttribute:
		rootObj.Name("attributeClassId").String(f.Root.AttributeClassID)
	case KindAction:
		rootObj.Name("actionClassId").String(f.Root.ActionClassID)
	case KindSegment:
		rootObj.Name("segmentId").String(f.Root.SegmentID)
	case KindDevice:
		rootObj.Name("deviceType").String(string(f.Root.DeviceType))
	}
	rootObj.End()

	qualObj := obj.Name("qualifier").Object()
	qualObj.Name("operator").String(string(f.Qualifier.Operator))
	qualObj.Maybe("metric", f.Qualifier.Metric != "").String(string(f.Qualifier.Metric))
	qualObj.End()

	obj.Name("value")
	f.Value.WriteToJSONWriter(w)

	obj.End()
}

func writeStringArray(obj *jwriter.ObjectState, name string, values []string) {
	arr := obj.Name(name).Array()
	for _, v := range values {
		arr.String(v)
	}
	arr.End()
}
