/*
Package vibra implements Vibra token contract.

Vibra is a NEP-17 compatible fungible token, so it can be tracked and
controlled by N3 compatible network monitors and wallet software. In addition
to the standard it supports spending allowances: an account may allow another
account (usually a contract like Escrow or Trust) to transfer a capped amount
of its tokens with TransferFrom.

On deployment 100,000,000 VIB (18 decimals) are minted to the deploying
account which also becomes the token owner. Only the owner can mint more
tokens later, any holder can burn its own tokens.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification. Empty `from`
means minted tokens, empty `to` means burnt tokens.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Approval notification. It's produced on every allowance change and contains
the new allowance value.

	Approval:
	  - name: owner
	    type: Hash160
	  - name: spender
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package vibra

/*
Contract storage model.

# Summary
Key-value storage format:
  - 'o' -> interop.Hash160
    token owner allowed to mint
  - 's' -> int
    total supply
  - 'b'<interop.Hash160> -> int
    account balances, zero balances are not stored
  - 'l'<owner interop.Hash160><spender interop.Hash160> -> int
    allowances, zero allowances are not stored
*/
