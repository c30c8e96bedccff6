package assert

import "fmt"

// Failure is the signal raised by an assertion whose condition does not
// hold. It is thrown by panic and recovered at the per-test boundary by the
// suite runner; the carried message becomes the test's failure report.
type Failure struct {
	Message string
}

func (f *Failure) Error() string {
	return f.Message
}

// raise panics with a *Failure carrying either the default message or the
// caller's override.
func raise(def string, msgAndArgs []any) {
	panic(&Failure{Message: message(def, msgAndArgs)})
}

// message resolves the optional trailing arguments every assertion accepts:
// nothing keeps the default, a lone string replaces it, a format string plus
// arguments is expanded, anything else is printed as-is.
func message(def string, msgAndArgs []any) string {
	switch len(msgAndArgs) {
	case 0:
		return def
	case 1:
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%+v", msgAndArgs[0])
	default:
		if format, ok := msgAndArgs[0].(string); ok {
			return fmt.Sprintf(format, msgAndArgs[1:]...)
		}
		return fmt.Sprint(msgAndArgs...)
	}
}
