package domain

// Counter names for sequential human-readable identifiers. Increments must be
// atomic per name; two concurrent submissions must never receive the same value.
const (
	CounterTransactions = "transactions"
	CounterCustomers    = "customers"
	CounterAgents       = "agents"
)
