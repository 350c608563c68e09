package problemfile

import "errors"

// ErrLoadProblem wraps every failure to read or decode a problem file.
var ErrLoadProblem = errors.New("load problem")
