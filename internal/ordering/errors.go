package ordering

import "errors"

// ErrValidation is returned by AddTask when the label is blank.
var ErrValidation = errors.New("task label is empty")
