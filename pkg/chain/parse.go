package chain

import (
	"strings"

	"github.com/dmitrymomot/rulechain/pkg/rules"
)

const (
	segmentSeparator = "|"
	paramSeparator   = ":"
)

// Segment is one name[:parameter] unit of a chain specification.
type Segment struct {
	Name     string
	Param    rules.Param
	Position int
}

// Split breaks a chain specification into segments. Only the first colon of a
// segment separates the name from its parameter; the rest of the parameter is
// kept verbatim. A blank specification has no segments.
func Split(spec string) ([]Segment, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}

	parts := strings.Split(spec, segmentSeparator)
	segments := make([]Segment, 0, len(parts))
	for i, part := range parts {
		name, raw, hasParam := strings.Cut(part, paramSeparator)
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, &ConfigError{Spec: spec, Token: part, Position: i, Err: ErrEmptySegment}
		}

		seg := Segment{Name: name, Position: i}
		if hasParam {
			seg.Param = rules.WithParam(raw)
		}
		segments = append(segments, seg)
	}
	return segments, nil
}
