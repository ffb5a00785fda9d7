package escrow

import (
	"math/big"

	"github.com/vibra-labs/vibra-contract/escrow/escrowstate"
)

// Possible escrow states returned by [ContractReader.State].
var (
	// StateAwaitingPayment is used until the buyer deposits the value.
	StateAwaitingPayment = big.NewInt(int64(escrowstate.AwaitingPayment))

	// StateAwaitingDelivery is used while the value is held by escrow.
	StateAwaitingDelivery = big.NewInt(int64(escrowstate.AwaitingDelivery))

	// StateDisputed is used after the buyer opened a dispute.
	StateDisputed = big.NewInt(int64(escrowstate.Disputed))

	// StateRefunded is a final state after the arbiter returned the value to the buyer.
	StateRefunded = big.NewInt(int64(escrowstate.Refunded))

	// StateComplete is a final state after the seller received the value.
	StateComplete = big.NewInt(int64(escrowstate.Complete))
)
