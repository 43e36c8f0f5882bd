package interp

// execKind tags the control-flow signal an exec call propagates upward,
// replacing host exceptions for return/break/continue per spec §9
// ("Escape signals without host exceptions") — grounded on the teacher's
// evaluator.ControlFlow, simplified to a single value threaded by return
// rather than a side-table the caller must remember to check.
type execKind int

const (
	execNormal execKind = iota
	execReturn
	execBreak
	execContinue
)

// execResult is what exec returns. A zero value is execNormal. An
// unhandled execBreak/execContinue/execReturn reaching the top of
// Interpret (i.e. outside any loop or call) is a resolver bug, since the
// resolver already rejects break/continue/return in illegal positions.
type execResult struct {
	kind  execKind
	value Value
}

var normalResult = execResult{kind: execNormal}
