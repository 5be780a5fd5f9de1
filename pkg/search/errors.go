package search

import "fmt"

// ContractError describes a violated engine invariant. It is raised with
// panic, never returned: a contract violation means the engine or the
// problem implementation is wrong, and continuing would produce a silently
// wrong plan.
type ContractError struct {
	Op  string // operation that detected the violation
	Msg string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("search: contract violation in %s: %s", e.Op, e.Msg)
}

func violate(op, format string, args ...any) {
	panic(&ContractError{Op: op, Msg: fmt.Sprintf(format, args...)})
}
