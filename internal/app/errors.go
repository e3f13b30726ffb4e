package app

import (
	"errors"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/tim-tx/cello-utils/internal/core"
)

// classify turns a typed assembly error into an errbuilder error whose code
// the CLI maps to an exit status. Errors that already carry a code pass
// through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var (
		unrecognized   *core.UnrecognizedColumnError
		missingColumn  *core.MissingColumnError
		missingField   *core.MissingFieldError
		invalidNumber  *core.InvalidNumberError
		invalidValue   *core.InvalidValueError
		missingInput   *core.MissingInputError
		conflicting    *core.ConflictingInputError
		duplicate      *core.DuplicateKeyError
		notImplemented *core.NotImplementedError
	)
	var code errbuilder.ErrCode
	switch {
	case errors.As(err, &unrecognized),
		errors.As(err, &missingColumn),
		errors.As(err, &missingField),
		errors.As(err, &invalidNumber),
		errors.As(err, &invalidValue),
		errors.As(err, &missingInput),
		errors.As(err, &conflicting):
		code = errbuilder.CodeInvalidArgument
	case errors.As(err, &duplicate):
		code = errbuilder.CodeAlreadyExists
	case errors.As(err, &notImplemented):
		code = errbuilder.CodeFailedPrecondition
	default:
		return err
	}
	return errbuilder.New().
		WithCode(code).
		WithMsg(err.Error()).
		WithCause(err)
}
