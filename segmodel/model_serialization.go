package segmodel

// DataModelSerialization defines an encoding for segment data model objects.
//
// For the default JSON encoding, use NewJSONDataModelSerialization.
type DataModelSerialization interface {
	// MarshalSegment converts a Segment into its serialized encoding.
	MarshalSegment(item Segment) ([]byte, error)
	// MarshalFilterGroup converts a bare filter tree into its serialized encoding.
	MarshalFilterGroup(item FilterGroup) ([]byte, error)
	// UnmarshalSegment attempts to convert a Segment from its serialized encoding.
	UnmarshalSegment(data []byte) (Segment, error)
	// UnmarshalFilterGroup attempts to convert a filter tree from its serialized encoding.
	UnmarshalFilterGroup(data []byte) (FilterGroup, error)
}

type jsonDataModelSerialization struct{}

// NewJSONDataModelSerialization provides the default JSON encoding for segment data
// model objects.
//
// Always use this rather than relying on json.Marshal() and json.Unmarshal(). The data
// model structs are guaranteed to serialize and deserialize correctly with json.Marshal()
// and json.Unmarshal(), but JSONDataModelSerialization may be enhanced in the future to
// use a more efficient mechanism.
func NewJSONDataModelSerialization() DataModelSerialization {
	return jsonDataModelSerialization{}
}

func (s jsonDataModelSerialization) MarshalSegment(item Segment) ([]byte, error) {
	return marshalSegment(item)
}

func (s jsonDataModelSerialization) MarshalFilterGroup(item FilterGroup) ([]byte, error) {
	return marshalFilterGroup(item)
}

func (s jsonDataModelSerialization) UnmarshalSegment(data []byte) (Segment, error) {
	return unmarshalSegment(data)
}

func (s jsonDataModelSerialization) UnmarshalFilterGroup(data []byte) (FilterGroup, error) {
	return unmarshalFilterGroup(data)
}

// MarshalJSON overrides the default json.Marshal behavior to provide the same marshalling
// behavior that is used by NewJSONDataModelSerialization().
func (s Segment) MarshalJSON() ([]byte, error) {
	return marshalSegment(s)
}

// UnmarshalJSON overrides the default json.Unmarshal behavior to provide the same
// unmarshalling behavior that is used by NewJSONDataModelSerialization().
func (s *Segment) UnmarshalJSON(data []byte) error {
	result, err := unmarshalSegment(data)
	if err == nil {
		*s = result
	}
	return err
}

// MarshalJSON overrides the default json.Marshal behavior to provide the same marshalling
// behavior that is used by NewJSONDataModelSerialization().
func (n FilterNode) MarshalJSON() ([]byte, error) {
	return marshalFilterNode(n)
}

// UnmarshalJSON overrides the default json.Unmarshal behavior to provide the same
// unmarshalling behavior that is used by NewJSONDataModelSerialization().
func (n *FilterNode) UnmarshalJSON(data []byte) error {
	result, err := unmarshalFilterNode(data)
	if err == nil {
		*n = result
	}
	return err
}
