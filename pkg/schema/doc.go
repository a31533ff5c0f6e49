// Package schema decodes schema documents and stores them by name.
//
// A schema document is a YAML (or JSON) mapping of request field names to
// rule chains:
//
//	age: integer|between:18,130
//	email: [required, email]
//	nickname:
//
// Stores implement the Store interface. MemoryStore keeps schemas in process,
// DirStore keeps one file per schema, and RedisStore keeps YAML documents
// under a key prefix. Stores only persist documents; compiling them is the
// validator's job.
package schema
