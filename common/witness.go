package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// IsUsableAddress checks if the account either witnessed the transaction or
// is the contract calling the current one.
func IsUsableAddress(addr interop.Hash160) bool {
	if len(addr) != interop.Hash160Len {
		return false
	}

	if runtime.CheckWitness(addr) {
		return true
	}

	// Check if a smart contract is calling script hash
	return BytesEqual(runtime.GetCallingScriptHash(), addr)
}

// CheckRole panics with ErrUnauthorized message if the account holding the
// named role has not authorized the call.
func CheckRole(account interop.Hash160, role string) {
	if !IsUsableAddress(account) {
		panic(ErrUnauthorized + ": only the " + role + " can call this method")
	}
}

// CheckHash panics with ErrInvalidHash message if h is not a valid script hash.
func CheckHash(h interop.Hash160, name string) {
	if len(h) != interop.Hash160Len {
		panic(ErrInvalidHash + ": " + name)
	}
}

// CheckAmount panics with ErrInvalidAmount message on negative values.
func CheckAmount(amount int) {
	if amount < 0 {
		panic(ErrInvalidAmount)
	}
}
