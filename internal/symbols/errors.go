package symbols

import "errors"

// errTooManyParams guards the fixed-size Params array; the source
// language has no construct that could realistically exceed
// MaxParams, so this is a defensive bound rather than a real runtime
// path.
var errTooManyParams = errors.New("symbols: function parameter count exceeds MaxParams")
