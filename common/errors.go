package common

// Exception messages thrown by the Vibra, Escrow and Trust contracts. Every
// failed call aborts the whole transaction, so callers match these values as
// substrings of the VM fault exception.
const (
	// ErrUnauthorized is thrown when the caller does not hold the role
	// required by the method (buyer, arbiter, organization, owner).
	ErrUnauthorized = "unauthorized"
	// ErrInvalidState is thrown when the escrow state machine does not
	// permit the requested transition.
	ErrInvalidState = "invalid state"
	// ErrIncorrectAmount is thrown when an escrow deposit differs from the
	// contractual value.
	ErrIncorrectAmount = "incorrect deposit amount"
	// ErrBelowMinimum is thrown when a trust deposit does not exceed the
	// minimal balance.
	ErrBelowMinimum = "deposit must be greater than the min balance"
	// ErrInsufficientBalance is thrown when the debited account can't cover
	// the amount.
	ErrInsufficientBalance = "insufficient balance"
	// ErrInsufficientAllowance is thrown when the spender's allowance can't
	// cover the amount.
	ErrInsufficientAllowance = "insufficient allowance"
	// ErrInvalidAmount is thrown for negative amounts.
	ErrInvalidAmount = "invalid amount"
	// ErrInvalidHash is thrown for script hashes of the wrong length.
	ErrInvalidHash = "invalid script hash"
	// ErrUnexpectedPayment is thrown by payment callbacks receiving tokens
	// the contract did not request.
	ErrUnexpectedPayment = "unexpected payment"
)
