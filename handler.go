package lockbox

// Handler is a core engine that can process a few specific messages.
// This could represent "create an escrow", or "approve an escrow".
type Handler interface {
	Checker
	Deliverer
}

// Checker is a subset of Handler to verify the validity of a transaction.
// It is its own interface to allow better type controls in decorators.
type Checker interface {
	Check(ctx Context, db KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer is a subset of Handler to execute a transaction.
// It is its own interface to allow better type controls in decorators.
type Deliverer interface {
	Deliver(ctx Context, db KVStore, tx Tx) (*DeliverResult, error)
}

// Registry is an interface to register your handler,
// the setup side of a Router.
type Registry interface {
	Handle(path string, h Handler)
}

// Instruction is an outbound directive computed by a handler and returned
// to the host environment for execution. The engine never executes
// instructions itself; its own state change is durable regardless of what
// the host does with them.
type Instruction interface {
	Validate() error
}

// CheckResult captures any non-error response from the preflight check of
// a transaction.
type CheckResult struct {
	// Data is a machine-parseable return value, like id of created entity.
	Data []byte

	// Log is human readable data, possibly added in decorators.
	Log string

	// GasAllocated is the maximum units of work we allow this tx to perform.
	GasAllocated int64
}

// DeliverResult captures any non-error response from the execution of a
// transaction.
type DeliverResult struct {
	// Data is a machine-parseable return value, like id of created entity.
	Data []byte

	// Log is human readable data, possibly added in decorators.
	Log string

	// Instructions are the ordered outbound transfers the host must carry
	// out as a consequence of this delivery. May be empty.
	Instructions []Instruction

	// GasUsed is the units of work performed.
	GasUsed int64
}
