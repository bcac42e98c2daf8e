package ot

import (
	"log"

	L "github.com/hiraeth-ot/otjson/logging"
	V "github.com/hiraeth-ot/otjson/value"
)

// LogApply wraps op so that applying it reports its outcome through
// loggers: a successful apply and a failed one each go to their own
// callback, the same split this module's Option/Either taps use.
func LogApply(op Operation, prefix string, loggers ...*log.Logger) func(V.Value) (V.Value, error) {
	left, right := L.LoggingCallbacks(loggers...)
	return func(d V.Value) (V.Value, error) {
		result, err := op.Apply(d)
		if err != nil {
			left("%s: %v", prefix, err)
			return nil, err
		}
		right("%s: %v", prefix, result)
		return result, nil
	}
}
