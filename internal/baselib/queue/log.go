package queue

import "github.com/btcsuite/btclog"

// log is the package-level logger for queue. It defaults to a disabled
// logger so importers that never call UseLogger pay no logging cost.
var log btclog.Logger = btclog.Disabled

// UseLogger sets the package-level logger used by queue. Subsystems that
// wire up a logging backend (see cmd/uchanctl) should call this once during
// startup.
func UseLogger(logger btclog.Logger) {
	log = logger
}
