// Package form models the host side of validation: typed field handles and a
// Form they can be looked up from. Snapshot is an ordered in-memory Form that
// can be built in code or decoded from YAML/JSON documents.
package form
