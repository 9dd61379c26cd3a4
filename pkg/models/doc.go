// Package models holds the immutable metadata that describes another
// system's domain before code generation: applications, entities and their
// fields, lookups, relationships, concepts and the CoreType that ties them
// together.
//
// Values are built with NewX constructors that validate every argument and
// either return a complete value or a guard error naming the offending
// parameter. Nothing in this package mutates a value after construction, so
// values may be shared freely between goroutines.
//
// Every type supports Equal, Hash, Params and With (copy with overrides), and
// encodes to JSON and YAML. Decoding runs through the same constructors, so a
// member that is absent on the wire is reported as a missing value.
package models
