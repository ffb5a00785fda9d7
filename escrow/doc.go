/*
Package escrow implements Escrow contract which holds Vibra tokens of a
buyer until the seller's delivery is confirmed or a dispute is resolved.

Escrow is deployed per deal with fixed buyer, seller, value and Vibra token
address. The deploying account becomes the arbiter. Escrow is a state machine:

	AwaitingPayment --deposit--> AwaitingDelivery
	AwaitingDelivery --confirmDelivery--> Complete
	AwaitingDelivery --dispute--> Disputed
	Disputed --processRefund--> Refunded

Complete and Refunded are terminal, every state-changing method fails there.
Numeric state values are defined in escrowstate package.

# Contract notifications

Deposit notification. It's produced when the buyer's tokens are moved to the
escrow.

	Deposit:
	  - name: from
	    type: Hash160
	  - name: value
	    type: Integer

Payment notification. It's produced when delivery is confirmed and tokens are
paid to the seller.

	Payment:
	  - name: to
	    type: Hash160
	  - name: value
	    type: Integer

Refund notification. It's produced when the arbiter returns tokens to the
buyer.

	Refund:
	  - name: to
	    type: Hash160
	  - name: value
	    type: Integer

Dispute notification. It's produced when the buyer opens a dispute.

	Dispute: []
*/
package escrow

/*
Contract storage model.

# Summary
Key-value storage format:
  - 't' -> interop.Hash160
    Vibra contract address
  - 'v' -> int
    exact deposit value
  - 'b' -> interop.Hash160
    buyer account
  - 's' -> interop.Hash160
    seller account
  - 'a' -> interop.Hash160
    arbiter account
  - 'x' -> int
    escrow state
  - 'pendingPayment' -> interop.Hash160
    exists only during the deposit transfer
*/
