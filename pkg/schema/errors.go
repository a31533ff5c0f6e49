package schema

import "errors"

var (
	ErrSchemaNotFound = errors.New("schema not found")
	ErrInvalidName    = errors.New("invalid schema name")
	ErrDecode         = errors.New("failed to decode schema document")
	ErrDecodeRequest  = errors.New("failed to decode request document")
	ErrEncode         = errors.New("failed to encode schema document")
)
