package escrow

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/vibra-labs/vibra-contract/common"
	"github.com/vibra-labs/vibra-contract/escrow/escrowstate"
)

const (
	tokenKey   = "t"
	valueKey   = "v"
	buyerKey   = "b"
	sellerKey  = "s"
	arbiterKey = "a"
	stateKey   = "x"
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		return
	}

	args := data.(struct {
		token  interop.Hash160
		value  int
		buyer  interop.Hash160
		seller interop.Hash160
	})

	common.CheckHash(args.token, "token")
	common.CheckHash(args.buyer, "buyer")
	common.CheckHash(args.seller, "seller")
	common.CheckAmount(args.value)

	ctx := storage.GetContext()

	storage.Put(ctx, tokenKey, args.token)
	storage.Put(ctx, buyerKey, args.buyer)
	storage.Put(ctx, sellerKey, args.seller)
	storage.Put(ctx, arbiterKey, runtime.GetScriptContainer().Sender)
	common.PutInt(ctx, valueKey, args.value)
	setState(ctx, escrowstate.AwaitingPayment)

	runtime.Log("escrow contract initialized")
}

// OnNEP17Payment is a NEP-17 payment callback. Escrow accepts only Vibra
// tokens it pulls itself in Deposit, any other payment fails.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetContext()
	common.CheckPayment(ctx, getHash(ctx, tokenKey), from)
}

// Deposit transfers the escrow value from the buyer account to the escrow.
// The buyer must have allowed escrow to spend at least the value before.
// It can be invoked by anyone in AwaitingPayment state, amount must be
// exactly the escrow value.
//
// It produces Deposit notification and moves escrow to AwaitingDelivery
// state.
func Deposit(amount int) {
	ctx := storage.GetContext()

	checkState(ctx, escrowstate.AwaitingPayment, "awaiting payment")

	value := common.GetInt(ctx, valueKey)
	if amount != value {
		panic(common.ErrIncorrectAmount)
	}

	buyer := getHash(ctx, buyerKey)

	setState(ctx, escrowstate.AwaitingDelivery)
	common.PullTokens(ctx, getHash(ctx, tokenKey), buyer, value)

	runtime.Notify("Deposit", buyer, value)
}

// ConfirmDelivery pays the whole escrow balance to the seller. It can be
// invoked only by the buyer in AwaitingDelivery state.
//
// It produces Payment notification and moves escrow to Complete state.
func ConfirmDelivery() {
	ctx := storage.GetContext()

	checkState(ctx, escrowstate.AwaitingDelivery, "awaiting delivery")
	common.CheckRole(getHash(ctx, buyerKey), "buyer")

	seller := getHash(ctx, sellerKey)

	setState(ctx, escrowstate.Complete)
	amount := payOut(ctx, seller)

	runtime.Notify("Payment", seller, amount)
}

// Dispute opens a dispute to be resolved by the arbiter. It can be invoked
// only by the buyer in AwaitingDelivery state.
//
// It produces Dispute notification and moves escrow to Disputed state.
func Dispute() {
	ctx := storage.GetContext()

	checkState(ctx, escrowstate.AwaitingDelivery, "awaiting delivery")
	common.CheckRole(getHash(ctx, buyerKey), "buyer")

	setState(ctx, escrowstate.Disputed)

	runtime.Notify("Dispute")
}

// ProcessRefund returns the whole escrow balance to the buyer. It can be
// invoked only by the arbiter (account that deployed escrow) in Disputed
// state.
//
// It produces Refund notification and moves escrow to Refunded state.
func ProcessRefund() {
	ctx := storage.GetContext()

	checkState(ctx, escrowstate.Disputed, "disputed")
	common.CheckRole(getHash(ctx, arbiterKey), "arbiter")

	buyer := getHash(ctx, buyerKey)

	setState(ctx, escrowstate.Refunded)
	amount := payOut(ctx, buyer)

	runtime.Notify("Refund", buyer, amount)
}

// State returns current escrow state, see escrowstate package for values.
func State() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, stateKey)
}

// Buyer returns buyer account.
func Buyer() interop.Hash160 {
	return getHash(storage.GetReadOnlyContext(), buyerKey)
}

// Seller returns seller account.
func Seller() interop.Hash160 {
	return getHash(storage.GetReadOnlyContext(), sellerKey)
}

// Arbiter returns account resolving disputes.
func Arbiter() interop.Hash160 {
	return getHash(storage.GetReadOnlyContext(), arbiterKey)
}

// Token returns Vibra contract address.
func Token() interop.Hash160 {
	return getHash(storage.GetReadOnlyContext(), tokenKey)
}

// Value returns exact amount of tokens to be deposited.
func Value() int {
	return common.GetInt(storage.GetReadOnlyContext(), valueKey)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// payOut transfers whole escrow balance to the recipient and returns the
// transferred amount.
func payOut(ctx storage.Context, to interop.Hash160) int {
	token := getHash(ctx, tokenKey)
	amount := common.TokenBalance(token)

	common.TransferTokens(token, to, amount)

	return amount
}

func checkState(ctx storage.Context, expected escrowstate.Type, name string) {
	if escrowstate.Type(common.GetInt(ctx, stateKey)) != expected {
		panic(common.ErrInvalidState + ": must be in " + name + " state")
	}
}

func setState(ctx storage.Context, s escrowstate.Type) {
	common.PutInt(ctx, stateKey, int(s))
}

func getHash(ctx storage.Context, key string) interop.Hash160 {
	return storage.Get(ctx, key).(interop.Hash160)
}
