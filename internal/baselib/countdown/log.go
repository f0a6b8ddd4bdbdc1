package countdown

import "github.com/btcsuite/btclog"

// log is the package-level logger for countdown. It defaults to a disabled
// logger so importers that never call UseLogger pay no logging cost.
var log btclog.Logger = btclog.Disabled

// UseLogger sets the package-level logger used by countdown.
func UseLogger(logger btclog.Logger) {
	log = logger
}
