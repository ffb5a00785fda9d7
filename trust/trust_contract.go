package trust

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/vibra-labs/vibra-contract/common"
)

const (
	tokenKey        = "t"
	ownerKey        = "o"
	beneficiaryKey  = "b"
	organizationKey = "g"
	minBalanceKey   = "m"
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		return
	}

	args := data.(struct {
		token        interop.Hash160
		beneficiary  interop.Hash160
		organization interop.Hash160
		minBalance   int
	})

	common.CheckHash(args.token, "token")
	common.CheckHash(args.beneficiary, "beneficiary")
	common.CheckHash(args.organization, "organization")
	common.CheckAmount(args.minBalance)

	ctx := storage.GetContext()

	storage.Put(ctx, tokenKey, args.token)
	storage.Put(ctx, ownerKey, runtime.GetScriptContainer().Sender)
	storage.Put(ctx, beneficiaryKey, args.beneficiary)
	storage.Put(ctx, organizationKey, args.organization)
	common.PutInt(ctx, minBalanceKey, args.minBalance)

	runtime.Log("trust contract initialized")
}

// OnNEP17Payment is a NEP-17 payment callback. Trust accepts only Vibra
// tokens it pulls itself in Deposit, any other payment fails.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetContext()
	common.CheckPayment(ctx, getHash(ctx, tokenKey), from)
}

// Deposit transfers tokens from the depositor account to the trust. The
// depositor must have allowed trust to spend the amount before. Amount must
// be greater than the minimal balance of the trust.
//
// It produces Deposit notification.
func Deposit(from interop.Hash160, amount int) {
	ctx := storage.GetContext()

	common.CheckHash(from, "from")

	if amount <= common.GetInt(ctx, minBalanceKey) {
		panic(common.ErrBelowMinimum)
	}

	common.CheckRole(from, "depositor")
	common.PullTokens(ctx, getHash(ctx, tokenKey), from, amount)

	runtime.Notify("Deposit", from, amount)
}

// ChargeFees pays the amount from the trust balance to the organization. It
// can be invoked only by the organization. Fees are not limited by the
// minimal balance, only by the trust balance.
//
// It produces Payment notification.
func ChargeFees(amount int) {
	ctx := storage.GetContext()

	common.CheckAmount(amount)

	organization := getHash(ctx, organizationKey)
	common.CheckRole(organization, "organization")

	common.TransferTokens(getHash(ctx, tokenKey), organization, amount)

	runtime.Notify("Payment", runtime.GetExecutingScriptHash(), organization, amount)
}

// Withdraw pays the amount from the trust balance to the owner. It can be
// invoked only by the owner.
//
// It produces Withdrawal notification. LowBalance notification is produced
// in addition if the remaining balance is not greater than the minimal
// balance.
func Withdraw(amount int) {
	ctx := storage.GetContext()

	common.CheckAmount(amount)

	owner := getHash(ctx, ownerKey)
	common.CheckRole(owner, "owner")

	withdraw(ctx, getHash(ctx, tokenKey), owner, amount)
}

// WithdrawAll pays the whole trust balance to the owner. It can be invoked
// only by the owner.
//
// It produces Withdrawal and LowBalance notifications.
func WithdrawAll() {
	ctx := storage.GetContext()

	owner := getHash(ctx, ownerKey)
	common.CheckRole(owner, "owner")

	token := getHash(ctx, tokenKey)
	withdraw(ctx, token, owner, common.TokenBalance(token))
}

// TransferOwnership makes another account the owner of the trust. It can be
// invoked only by the current owner.
//
// It produces OwnershipTransferred notification.
func TransferOwnership(newOwner interop.Hash160) {
	ctx := storage.GetContext()

	common.CheckHash(newOwner, "new owner")

	owner := getHash(ctx, ownerKey)
	common.CheckRole(owner, "owner")

	storage.Put(ctx, ownerKey, newOwner)

	runtime.Notify("OwnershipTransferred", owner, newOwner)
}

// Balance returns Vibra balance of the trust.
func Balance() int {
	return common.TokenBalance(getHash(storage.GetReadOnlyContext(), tokenKey))
}

// Owner returns the account allowed to withdraw.
func Owner() interop.Hash160 {
	return getHash(storage.GetReadOnlyContext(), ownerKey)
}

// Beneficiary returns beneficiary account.
func Beneficiary() interop.Hash160 {
	return getHash(storage.GetReadOnlyContext(), beneficiaryKey)
}

// Organization returns the account allowed to charge fees.
func Organization() interop.Hash160 {
	return getHash(storage.GetReadOnlyContext(), organizationKey)
}

// MinBalance returns the balance threshold for LowBalance notifications.
func MinBalance() int {
	return common.GetInt(storage.GetReadOnlyContext(), minBalanceKey)
}

// Token returns Vibra contract address.
func Token() interop.Hash160 {
	return getHash(storage.GetReadOnlyContext(), tokenKey)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func withdraw(ctx storage.Context, token, owner interop.Hash160, amount int) {
	common.TransferTokens(token, owner, amount)

	runtime.Notify("Withdrawal", owner, amount)

	balance := common.TokenBalance(token)
	if balance <= common.GetInt(ctx, minBalanceKey) {
		runtime.Notify("LowBalance", owner, balance)
	}
}

func getHash(ctx storage.Context, key string) interop.Hash160 {
	return storage.Get(ctx, key).(interop.Hash160)
}
