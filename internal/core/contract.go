package core

import "fmt"

// ContractViolation is the panic value raised when a caller breaks an
// invariant such as an out-of-bounds write. It is never returned as an error.
type ContractViolation struct {
	Invariant string
}

func (c ContractViolation) Error() string {
	return "contract violation: " + c.Invariant
}

// Require panics with a ContractViolation when ok is false.
func Require(ok bool, format string, args ...any) {
	if ok {
		return
	}
	panic(ContractViolation{Invariant: fmt.Sprintf(format, args...)})
}
