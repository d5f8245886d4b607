// Package reporter provides rules.Reporter implementations: Writer prints
// failures for a terminal, Log emits a structured record, Recorder keeps
// reports for inspection and Multi fans out to several reporters.
package reporter
