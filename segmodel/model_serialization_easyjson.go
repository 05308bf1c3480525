//go:build launchdarkly_easyjson
// +build launchdarkly_easyjson

package segmodel

// This conditionally-compiled file provides MarshalEasyJSON and UnmarshalEasyJSON
// methods for the data model types, via the easyjson interoperability mode of the
// go-jsonstream library. Store integrations that process large numbers of segments can
// enable it with the build tag launchdarkly_easyjson.

import (
	"github.com/launchdarkly/go-jsonstream/v3/jreader"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	ej_jlexer "github.com/mailru/easyjson/jlexer"
	ej_jwriter "github.com/mailru/easyjson/jwriter"
)

// MarshalEasyJSON implements the easyjson.Marshaler interface.
func (s Segment) MarshalEasyJSON(writer *ej_jwriter.Writer) {
	wrappedWriter := jwriter.NewWriterFromEasyJSONWriter(writer)
	marshalSegmentToWriter(s, &wrappedWriter)
}

// UnmarshalEasyJSON implements the easyjson.Unmarshaler interface.
func (s *Segment) UnmarshalEasyJSON(lexer *ej_jlexer.Lexer) {
	wrappedReader := jreader.NewReaderFromEasyJSONLexer(lexer)
	ret := readSegment(&wrappedReader)
	if wrappedReader.Error() == nil {
		PreprocessSegment(&ret)
		*s = ret
	}
}

// MarshalEasyJSON implements the easyjson.Marshaler interface.
func (n FilterNode) MarshalEasyJSON(writer *ej_jwriter.Writer) {
	wrappedWriter := jwriter.NewWriterFromEasyJSONWriter(writer)
	writeFilterNode(&wrappedWriter, n)
}

// UnmarshalEasyJSON implements the easyjson.Unmarshaler interface.
func (n *FilterNode) UnmarshalEasyJSON(lexer *ej_jlexer.Lexer) {
	wrappedReader := jreader.NewReaderFromEasyJSONLexer(lexer)
	ret := readFilterNode(&wrappedReader)
	if wrappedReader.Error() == nil {
		if ret.IsGroup() {
			PreprocessGroup(ret.Group)
		} else {
			ret.Resource.preprocessed = preprocessFilter(&ret.Resource)
		}
		*n = ret
	}
}
