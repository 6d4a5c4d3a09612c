package aggregates

// Contract describes one pipeline write boundary. The aggregate opens the
// transaction that covers both its consistency checks and its inserts.
type Contract struct {
	Name string
	Op   string
	// Rejects lists the reason codes the write can fail with before
	// anything is persisted.
	Rejects []string
	Notes   string
}

// UndeclaredReason replaces rejection reasons a contract does not list.
const UndeclaredReason = "UNDECLARED"

// Aggregate is the common marker for all aggregate contracts.
type Aggregate interface {
	Contract() Contract
}

// CanReject reports whether reason is one of the contract's rejection codes.
func (c Contract) CanReject(reason string) bool {
	for _, r := range c.Rejects {
		if r == reason {
			return true
		}
	}
	return false
}

// Contracts returns every pipeline write boundary in pipeline order.
func Contracts() []Contract {
	return []Contract{ClaimAggregateContract, VariantAggregateContract, ExportAggregateContract}
}

// ContractFor looks a contract up by its op name.
func ContractFor(op string) (Contract, bool) {
	for _, c := range Contracts() {
		if c.Op == op {
			return c, true
		}
	}
	return Contract{}, false
}

// RejectionLabel returns reason when op's contract declares it and
// UndeclaredReason otherwise. Ops without a contract keep their reason.
func RejectionLabel(op, reason string) string {
	c, ok := ContractFor(op)
	if !ok || c.CanReject(reason) {
		return reason
	}
	return UndeclaredReason
}
