/*
Package trust implements Trust contract which manages Vibra tokens deposited
for a beneficiary.

Anyone can deposit tokens exceeding the minimal balance. The organization
set on deployment periodically charges fees from the trust, the owner (account
that deployed the trust, can be changed with TransferOwnership) withdraws
tokens. Trust doesn't store its balance, it's always the Vibra balance of the
contract.

# Contract notifications

Deposit notification. It's produced when tokens are deposited.

	Deposit:
	  - name: from
	    type: Hash160
	  - name: amount
	    type: Integer

Payment notification. It's produced when the organization charges fees.

	Payment:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Withdrawal notification. It's produced when the owner withdraws tokens.

	Withdrawal:
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

LowBalance notification. It's produced after withdrawal if the remaining
balance is less than or equal to the minimal balance.

	LowBalance:
	  - name: holder
	    type: Hash160
	  - name: balance
	    type: Integer

OwnershipTransferred notification. It's produced when the owner is changed.

	OwnershipTransferred:
	  - name: previousOwner
	    type: Hash160
	  - name: newOwner
	    type: Hash160
*/
package trust

/*
Contract storage model.

# Summary
Key-value storage format:
  - 't' -> interop.Hash160
    Vibra contract address
  - 'o' -> interop.Hash160
    owner account
  - 'b' -> interop.Hash160
    beneficiary account
  - 'g' -> interop.Hash160
    organization account
  - 'm' -> int
    minimal balance
  - 'pendingPayment' -> interop.Hash160
    exists only during the deposit transfer
*/
