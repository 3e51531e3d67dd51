package eventual

// panic messages for the fatal, non-recoverable caller bugs.
// expected empty outcomes (filter misses, forced timeouts) are returned as
// Option values instead, and domain failures travel as result.Result values.
const (
	completedTwicePanicMsg = "eventual: the cell is already completed"
	nilReactionPanicMsg    = "eventual: the provided reaction is nil"
	nilContextPanicMsg     = "eventual: the provided execution context is nil"
	nilCellPanicMsg        = "eventual: the provided cell is nil"
)
