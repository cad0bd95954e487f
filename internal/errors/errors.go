package errors

import (
	"fmt"
	"runtime"

	errorsGo "github.com/go-errors/errors"

	"github.com/srlehn/iconresize/internal/consts"
)

func As(err error, target any) bool { return errorsGo.As(err, target) }

func Is(err, target error) bool { return errorsGo.Is(err, target) }

func Join(errs ...error) error {
	// not implemented by github.com/go-errors/errors
	if err := errorsGo.Join(errs...); err != nil {
		if errGo, okErrGo := err.(*errorsGo.Error); okErrGo {
			return errGo
		}
		return errorsGo.Wrap(err, 1)
	} else {
		return nil
	}
}

func New(obj any) *Error {
	// return nil for nil unlike github.com/go-errors/errors.New()
	if obj == nil {
		return nil
	}
	// don't overwrite origin of failure
	if errGo, okErrGo := obj.(*errorsGo.Error); okErrGo {
		return errGo
	}
	return errorsGo.Wrap(obj, 1)
}

// Kind tags err with the sentinel kind so that Is(result, kind) holds.
// The message of err is kept after the kind's message.
// A nil err yields nil.
func Kind(kind, err error) error {
	if err == nil {
		return nil
	}
	if kind == nil {
		return errorsGo.Wrap(err, 1)
	}
	if errorsGo.Is(err, kind) {
		if errGo, okErrGo := err.(*errorsGo.Error); okErrGo {
			return errGo
		}
		return errorsGo.Wrap(err, 1)
	}
	return errorsGo.Wrap(fmt.Errorf(`%w: %w`, kind, err), 1)
}

// Stack returns the stack trace of err if it carries one.
func Stack(err error) (string, bool) {
	var errGo *errorsGo.Error
	if !As(err, &errGo) || errGo == nil {
		return ``, false
	}
	return errGo.ErrorStack(), true
}

// remaining "github.com/go-errors/errors" symbols

type Error = errorsGo.Error

func Errorf(format string, a ...interface{}) *Error { return errorsGo.Errorf(format, a...) }

func Wrap(e interface{}, skip int) *Error { return errorsGo.Wrap(e, skip+1) }

// NilReceiver returns an error with the function name if any of the arguments are nil.
// Without arguments the error is returned unconditionally.
// The error matches consts.ErrNilReceiver.
func NilReceiver(args ...any) error {
	return errMsgNilTester(consts.ErrNilReceiver, 3, args...)
}

// NilParam returns an error with the function name if any of the arguments are nil.
// Without arguments the error is returned unconditionally.
// The error matches consts.ErrNilParam.
func NilParam(args ...any) error {
	return errMsgNilTester(consts.ErrNilParam, 3, args...)
}

func errMsgNilTester(kind error, skip int, args ...any) error {
	if len(args) == 0 {
		return errMsg(kind, skip)
	}
	for i := range args {
		if args[i] == nil {
			goto anyNil
		}
	}
	return nil
anyNil:
	return errMsg(kind, skip)
}

func errMsg(kind error, skip int) error {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return Wrap(kind, skip)
	}
	return Wrap(fmt.Errorf(`%w: %s()`, kind, runtime.FuncForPC(pc).Name()), skip)
}
