package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// pendingPaymentKey holds the account the executing contract is currently
// pulling tokens from. It lives only for the duration of PullTokens.
const pendingPaymentKey = "pendingPayment"

// TransferTokens transfers amount of the token from the executing contract
// to the recipient. It panics with ErrInsufficientBalance if the token
// contract refuses the transfer.
func TransferTokens(token, to interop.Hash160, amount int) {
	self := runtime.GetExecutingScriptHash()

	ok := contract.Call(token, "transfer", contract.All, self, to, amount, nil).(bool)
	if !ok {
		panic(ErrInsufficientBalance)
	}
}

// PullTokens transfers amount of the token from the account to the executing
// contract spending the allowance the account gave to the contract. Payment
// callback accepts the tokens only during this call, see CheckPayment.
func PullTokens(ctx storage.Context, token, from interop.Hash160, amount int) {
	self := runtime.GetExecutingScriptHash()

	storage.Put(ctx, pendingPaymentKey, from)
	ok := contract.Call(token, "transferFrom", contract.All, self, from, self, amount, nil).(bool)
	storage.Delete(ctx, pendingPaymentKey)

	if !ok {
		panic(ErrInsufficientBalance)
	}
}

// CheckPayment must be called from `onNEP17Payment`. It panics with
// ErrUnexpectedPayment message if the payment is made with a foreign token
// or was not requested by PullTokens.
func CheckPayment(ctx storage.Context, token, from interop.Hash160) {
	if !BytesEqual(runtime.GetCallingScriptHash(), token) {
		panic(ErrUnexpectedPayment + ": only Vibra tokens are accepted")
	}

	pending := storage.Get(ctx, pendingPaymentKey)
	if pending == nil || !BytesEqual(pending.([]byte), from) {
		panic(ErrUnexpectedPayment + ": tokens are accepted only via deposit")
	}
}

// TokenBalance returns token balance of the executing contract.
func TokenBalance(token interop.Hash160) int {
	return contract.Call(token, "balanceOf", contract.ReadStates,
		runtime.GetExecutingScriptHash()).(int)
}
