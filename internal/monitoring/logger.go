// Package monitoring routes diagnostic output to a side channel kept
// strictly separate from the row sink.
package monitoring

import "log"

// Logf is the package-level diagnostic logger. It defaults to
// log.Printf (stderr) but may be replaced by SetLogger. Tests or
// production code can redirect or mute it.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil will set a no-op
// logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// Mute silences all diagnostics for the rest of the run.
func Mute() { SetLogger(nil) }
