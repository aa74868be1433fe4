package scheme

import "github.com/pkg/errors"

// Kind distinguishes the sentinel error conditions the event loop needs
// to branch on, independent of the wrapped context pkg/errors attaches
// at each call site (§7).
type Kind int

const (
	KindNone Kind = iota
	KindBadDescriptor
	KindInvalidArgument
	KindCanceled
)

type sentinelError struct {
	kind Kind
	msg  string
}

func (e *sentinelError) Error() string { return e.msg }

var (
	errBadDescriptorBase   = &sentinelError{kind: KindBadDescriptor, msg: "bad file descriptor"}
	errInvalidArgumentBase = &sentinelError{kind: KindInvalidArgument, msg: "invalid argument"}
	errCanceledBase        = &sentinelError{kind: KindCanceled, msg: "operation canceled"}
)

func ErrBadDescriptor(context string) error {
	return errors.Wrap(errBadDescriptorBase, context)
}

func ErrInvalidArgument(context string) error {
	return errors.Wrap(errInvalidArgumentBase, context)
}

func ErrCanceled(context string) error {
	return errors.Wrap(errCanceledBase, context)
}

// KindOf unwraps err (however many times pkg/errors wrapped it) down to
// one of the sentinel Kinds, or KindNone if it doesn't match any.
func KindOf(err error) Kind {
	cause := errors.Cause(err)
	if se, ok := cause.(*sentinelError); ok {
		return se.kind
	}
	return KindNone
}
