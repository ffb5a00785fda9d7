package vibra

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/vibra-labs/vibra-contract/common"
)

// Token holds all token info.
type Token struct {
	// Ticker symbol
	Symbol string
	// Amount of decimals
	Decimals int
	// Storage key for circulation value
	CirculationKey string
}

const (
	symbol      = "VIB"
	decimals    = 18
	circulation = "s"

	// 100,000,000 tokens with 18 decimals, doesn't fit into Go int constant.
	initialSupply = "100000000000000000000000000"

	ownerKey        = "o"
	balancePrefix   = 'b'
	allowancePrefix = 'l'
)

var token Token

func createToken() Token {
	return Token{
		Symbol:         symbol,
		Decimals:       decimals,
		CirculationKey: circulation,
	}
}

func init() {
	token = createToken()
}

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		return
	}

	ctx := storage.GetContext()

	owner := runtime.GetScriptContainer().Sender
	supply := std.Atoi(initialSupply, 10)

	storage.Put(ctx, ownerKey, owner)
	storage.Put(ctx, token.CirculationKey, supply)
	common.PutInt(ctx, balanceKey(owner), supply)

	var nobody interop.Hash160
	runtime.Notify("Transfer", nobody, owner, supply)

	runtime.Log("vibra contract initialized")
}

// Symbol is a NEP-17 standard method that returns VIB token symbol.
func Symbol() string {
	return token.Symbol
}

// Decimals is a NEP-17 standard method that returns precision of Vibra
// balances.
func Decimals() int {
	return token.Decimals
}

// TotalSupply is a NEP-17 standard method that returns total amount of
// tokens in circulation.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return token.getSupply(ctx)
}

// BalanceOf is a NEP-17 standard method that returns Vibra balance of the
// specified account. Unknown accounts have zero balance.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return token.balanceOf(ctx, account)
}

// Allowance returns amount of tokens spender is still allowed to transfer
// from the owner account.
func Allowance(owner, spender interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, allowanceKey(owner, spender))
}

// Owner returns the account allowed to mint new tokens.
func Owner() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, ownerKey).(interop.Hash160)
}

// Transfer is a NEP-17 standard method that transfers Vibra tokens from one
// account to another. It can be invoked only by the account owner (either by
// witness or by the contract with `from` hash).
//
// It returns false if the owner hasn't authorized the call or doesn't have
// enough tokens. It produces Transfer notification and calls `onNEP17Payment`
// of the recipient if it's a deployed contract.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()

	common.CheckHash(from, "from")
	common.CheckHash(to, "to")
	common.CheckAmount(amount)

	if !common.IsUsableAddress(from) {
		runtime.Log(common.ErrUnauthorized)
		return false
	}

	if !token.transfer(ctx, from, to, amount) {
		runtime.Log(common.ErrInsufficientBalance)
		return false
	}

	postTransfer(from, to, amount, data)

	return true
}

// TransferFrom transfers tokens from one account to another on behalf of the
// spender which has been given an allowance by the `from` account. It can be
// invoked only by the spender, the allowance is decreased exactly by the
// transferred amount.
//
// Unlike Transfer it fails the whole invocation if the allowance or the
// balance are not enough. It produces Transfer notification and calls
// `onNEP17Payment` of the recipient if it's a deployed contract.
func TransferFrom(spender, from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()

	common.CheckHash(from, "from")
	common.CheckHash(to, "to")
	common.CheckAmount(amount)
	common.CheckRole(spender, "spender")

	allowed := common.GetInt(ctx, allowanceKey(from, spender))
	if allowed < amount {
		panic(common.ErrInsufficientAllowance)
	}

	if token.balanceOf(ctx, from) < amount {
		panic(common.ErrInsufficientBalance)
	}

	common.PutInt(ctx, allowanceKey(from, spender), allowed-amount)
	token.transfer(ctx, from, to, amount)

	postTransfer(from, to, amount, data)

	return true
}

// Approve sets the amount of tokens spender is allowed to transfer from the
// owner account. It can be invoked only by the owner.
//
// It produces Approval notification.
func Approve(owner, spender interop.Hash160, amount int) bool {
	ctx := storage.GetContext()

	checkAllowanceChange(owner, spender, amount)
	setAllowance(ctx, owner, spender, amount)

	return true
}

// IncreaseAllowance increases the amount of tokens spender is allowed to
// transfer from the owner account. It can be invoked only by the owner.
//
// It produces Approval notification with the new allowance value.
func IncreaseAllowance(owner, spender interop.Hash160, amount int) bool {
	ctx := storage.GetContext()

	checkAllowanceChange(owner, spender, amount)

	allowed := common.GetInt(ctx, allowanceKey(owner, spender))
	setAllowance(ctx, owner, spender, allowed+amount)

	return true
}

// DecreaseAllowance decreases the amount of tokens spender is allowed to
// transfer from the owner account. It can be invoked only by the owner and
// fails if the allowance would become negative.
//
// It produces Approval notification with the new allowance value.
func DecreaseAllowance(owner, spender interop.Hash160, amount int) bool {
	ctx := storage.GetContext()

	checkAllowanceChange(owner, spender, amount)

	allowed := common.GetInt(ctx, allowanceKey(owner, spender))
	if allowed < amount {
		panic(common.ErrInsufficientAllowance)
	}

	setAllowance(ctx, owner, spender, allowed-amount)

	return true
}

// Mint creates new tokens on the recipient account increasing total supply.
// It can be invoked only by the token owner.
//
// It produces Transfer notification with empty sender and calls
// `onNEP17Payment` of the recipient if it's a deployed contract.
func Mint(to interop.Hash160, amount int) {
	ctx := storage.GetContext()

	common.CheckHash(to, "to")
	common.CheckAmount(amount)
	common.CheckRole(storage.Get(ctx, ownerKey).(interop.Hash160), "token owner")

	supply := token.getSupply(ctx)
	storage.Put(ctx, token.CirculationKey, supply+amount)
	common.PutInt(ctx, balanceKey(to), token.balanceOf(ctx, to)+amount)

	var nobody interop.Hash160
	runtime.Notify("Transfer", nobody, to, amount)

	postTransfer(nobody, to, amount, nil)
}

// Burn destroys tokens of the account decreasing total supply. It can be
// invoked only by the account owner.
//
// It produces Transfer notification with empty recipient.
func Burn(from interop.Hash160, amount int) {
	ctx := storage.GetContext()

	common.CheckHash(from, "from")
	common.CheckAmount(amount)
	common.CheckRole(from, "account owner")

	balance := token.balanceOf(ctx, from)
	if balance < amount {
		panic(common.ErrInsufficientBalance)
	}

	common.PutInt(ctx, balanceKey(from), balance-amount)

	supply := token.getSupply(ctx)
	storage.Put(ctx, token.CirculationKey, supply-amount)

	var nobody interop.Hash160
	runtime.Notify("Transfer", from, nobody, amount)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// getSupply gets the token totalSupply value from VM storage.
func (t Token) getSupply(ctx storage.Context) int {
	return common.GetInt(ctx, t.CirculationKey)
}

// balanceOf gets the token balance of a specific address.
func (t Token) balanceOf(ctx storage.Context, holder interop.Hash160) int {
	return common.GetInt(ctx, balanceKey(holder))
}

// transfer moves tokens between accounts and produces Transfer notification.
// It returns false if `from` doesn't have enough tokens.
func (t Token) transfer(ctx storage.Context, from, to interop.Hash160, amount int) bool {
	amountFrom := t.balanceOf(ctx, from)
	if amountFrom < amount {
		return false
	}

	common.PutInt(ctx, balanceKey(from), amountFrom-amount)

	// read after write, `from` and `to` may be the same account
	amountTo := t.balanceOf(ctx, to)
	common.PutInt(ctx, balanceKey(to), amountTo+amount)

	runtime.Notify("Transfer", from, to, amount)

	return true
}

// postTransfer calls payment callback of the recipient contract.
func postTransfer(from, to interop.Hash160, amount int, data any) {
	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, amount, data)
	}
}

func checkAllowanceChange(owner, spender interop.Hash160, amount int) {
	common.CheckHash(spender, "spender")
	common.CheckAmount(amount)
	common.CheckRole(owner, "account owner")
}

func setAllowance(ctx storage.Context, owner, spender interop.Hash160, amount int) {
	common.PutInt(ctx, allowanceKey(owner, spender), amount)
	runtime.Notify("Approval", owner, spender, amount)
}

func balanceKey(account interop.Hash160) []byte {
	return append([]byte{balancePrefix}, account...)
}

func allowanceKey(owner, spender interop.Hash160) []byte {
	key := append([]byte{allowancePrefix}, owner...)
	return append(key, spender...)
}
