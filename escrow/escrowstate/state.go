package escrowstate

// Type is an enumeration for escrow states. Numeric values are returned by
// the `state` method of the contract.
type Type int

// Various escrow states.
const (
	// AwaitingPayment is the initial state, buyer hasn't deposited yet.
	AwaitingPayment Type = iota

	// AwaitingDelivery stands for deposited escrow waiting for the buyer to
	// confirm delivery or to open a dispute.
	AwaitingDelivery

	// Disputed stands for escrow waiting for the arbiter decision.
	Disputed

	// Refunded is a terminal state, deposit is returned to the buyer.
	Refunded

	// Complete is a terminal state, deposit is paid to the seller.
	Complete
)
