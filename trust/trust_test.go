package trust_test

import (
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/vibra-labs/vibra-contract/common"
	"github.com/vibra-labs/vibra-contract/internal/contracttest"
)

var minBalance = contracttest.VIB(1)

type trustEnv struct {
	token        *neotest.ContractInvoker
	trust        *neotest.ContractInvoker
	beneficiary  neotest.Signer
	organization neotest.Signer
}

func newTrustEnv(t *testing.T) trustEnv {
	e := contracttest.NewExecutor(t)
	token := contracttest.DeployVibra(t, e)

	beneficiary := e.NewAccount(t)
	organization := e.NewAccount(t)

	return trustEnv{
		token:        token,
		trust:        contracttest.DeployTrust(t, e, token.Hash, beneficiary.ScriptHash(), organization.ScriptHash(), minBalance),
		beneficiary:  beneficiary,
		organization: organization,
	}
}

// deposit transfers tokens from the committee to the trust.
func (env trustEnv) deposit(t *testing.T, amount *big.Int) {
	env.token.Invoke(t, true, "approve", env.token.CommitteeHash, env.trust.Hash, amount)

	h := env.trust.Invoke(t, stackitem.Null{}, "deposit", env.trust.CommitteeHash, amount)
	ev := contracttest.Event(t, env.trust, h, "Deposit")
	contracttest.RequireHash(t, env.trust.CommitteeHash, ev[0])
	contracttest.RequireInt(t, amount, ev[1])
}

func TestTrustGeneric(t *testing.T) {
	env := newTrustEnv(t)
	c := env.trust

	c.Invoke(t, stackitem.NewBuffer(c.CommitteeHash.BytesBE()), "owner")
	c.Invoke(t, stackitem.NewBuffer(env.beneficiary.ScriptHash().BytesBE()), "beneficiary")
	c.Invoke(t, stackitem.NewBuffer(env.organization.ScriptHash().BytesBE()), "organization")
	c.Invoke(t, minBalance, "minBalance")
	c.Invoke(t, stackitem.NewBuffer(env.token.Hash.BytesBE()), "token")
	c.Invoke(t, 0, "balance")
	c.Invoke(t, common.Version, "version")
}

func TestTrustDeposit(t *testing.T) {
	env := newTrustEnv(t)
	c := env.trust

	env.token.Invoke(t, true, "approve", c.CommitteeHash, c.Hash, contracttest.VIB(10))

	t.Run("not greater than min balance", func(t *testing.T) {
		c.InvokeFail(t, common.ErrBelowMinimum, "deposit", c.CommitteeHash, minBalance)
		c.InvokeFail(t, common.ErrBelowMinimum, "deposit", c.CommitteeHash, 0)
	})
	t.Run("without witness", func(t *testing.T) {
		c.WithSigners(env.beneficiary).InvokeFail(t, common.ErrUnauthorized, "deposit",
			c.CommitteeHash, contracttest.VIB(2))
	})
	t.Run("above allowance", func(t *testing.T) {
		c.InvokeFail(t, common.ErrInsufficientAllowance, "deposit", c.CommitteeHash, contracttest.VIB(11))
	})
	t.Run("unsolicited payment", func(t *testing.T) {
		env.token.InvokeFail(t, common.ErrUnexpectedPayment, "transfer",
			c.CommitteeHash, c.Hash, contracttest.VIB(2), nil)
	})

	amount := new(big.Int).Add(minBalance, big.NewInt(1))
	c.Invoke(t, stackitem.Null{}, "deposit", c.CommitteeHash, amount)
	c.Invoke(t, amount, "balance")
	env.token.Invoke(t, amount, "balanceOf", c.Hash)
}

func TestTrustChargeFees(t *testing.T) {
	env := newTrustEnv(t)
	c := env.trust
	env.deposit(t, contracttest.VIB(5))

	cOrg := c.WithSigners(env.organization)

	c.InvokeFail(t, common.ErrUnauthorized, "chargeFees", contracttest.VIB(1))
	c.WithSigners(env.beneficiary).InvokeFail(t, common.ErrUnauthorized, "chargeFees", contracttest.VIB(1))

	h := cOrg.Invoke(t, stackitem.Null{}, "chargeFees", contracttest.VIB(2))
	ev := contracttest.Event(t, c, h, "Payment")
	contracttest.RequireHash(t, c.Hash, ev[0])
	contracttest.RequireHash(t, env.organization.ScriptHash(), ev[1])
	contracttest.RequireInt(t, contracttest.VIB(2), ev[2])

	env.token.Invoke(t, contracttest.VIB(2), "balanceOf", env.organization.ScriptHash())
	c.Invoke(t, contracttest.VIB(3), "balance")

	t.Run("below min balance", func(t *testing.T) {
		cOrg.Invoke(t, stackitem.Null{}, "chargeFees", contracttest.VIB(3))
		c.Invoke(t, 0, "balance")
	})
	t.Run("above balance", func(t *testing.T) {
		cOrg.InvokeFail(t, common.ErrInsufficientBalance, "chargeFees", 1)
	})
	t.Run("negative amount", func(t *testing.T) {
		cOrg.InvokeFail(t, common.ErrInvalidAmount, "chargeFees", -1)
	})
}

func TestTrustWithdraw(t *testing.T) {
	env := newTrustEnv(t)
	c := env.trust
	env.deposit(t, contracttest.VIB(5))

	c.WithSigners(env.beneficiary).InvokeFail(t, common.ErrUnauthorized, "withdraw", contracttest.VIB(1))
	c.WithSigners(env.organization).InvokeFail(t, common.ErrUnauthorized, "withdrawAll")

	h := c.Invoke(t, stackitem.Null{}, "withdraw", contracttest.VIB(1))
	ev := contracttest.Event(t, c, h, "Withdrawal")
	contracttest.RequireHash(t, c.CommitteeHash, ev[0])
	contracttest.RequireInt(t, contracttest.VIB(1), ev[1])
	contracttest.NoEvent(t, c, h, "LowBalance")

	h = c.Invoke(t, stackitem.Null{}, "withdraw", contracttest.VIB(3))
	ev = contracttest.Event(t, c, h, "LowBalance")
	contracttest.RequireHash(t, c.CommitteeHash, ev[0])
	contracttest.RequireInt(t, minBalance, ev[1])

	c.InvokeFail(t, common.ErrInsufficientBalance, "withdraw", contracttest.VIB(2))

	h = c.Invoke(t, stackitem.Null{}, "withdrawAll")
	ev = contracttest.Event(t, c, h, "Withdrawal")
	contracttest.RequireInt(t, minBalance, ev[1])
	ev = contracttest.Event(t, c, h, "LowBalance")
	contracttest.RequireInt(t, big.NewInt(0), ev[1])

	c.Invoke(t, 0, "balance")
	env.token.Invoke(t, contracttest.VIB(100_000_000), "balanceOf", c.CommitteeHash)
}

func TestTrustTransferOwnership(t *testing.T) {
	env := newTrustEnv(t)
	c := env.trust
	env.deposit(t, contracttest.VIB(5))

	newOwner := c.NewAccount(t)
	cNew := c.WithSigners(newOwner)

	cNew.InvokeFail(t, common.ErrUnauthorized, "transferOwnership", newOwner.ScriptHash())

	h := c.Invoke(t, stackitem.Null{}, "transferOwnership", newOwner.ScriptHash())
	ev := contracttest.Event(t, c, h, "OwnershipTransferred")
	contracttest.RequireHash(t, c.CommitteeHash, ev[0])
	contracttest.RequireHash(t, newOwner.ScriptHash(), ev[1])
	c.Invoke(t, stackitem.NewBuffer(newOwner.ScriptHash().BytesBE()), "owner")

	c.InvokeFail(t, common.ErrUnauthorized, "withdraw", contracttest.VIB(1))

	h = cNew.Invoke(t, stackitem.Null{}, "withdraw", contracttest.VIB(1))
	ev = contracttest.Event(t, c, h, "Withdrawal")
	contracttest.RequireHash(t, newOwner.ScriptHash(), ev[0])
	env.token.Invoke(t, contracttest.VIB(1), "balanceOf", newOwner.ScriptHash())
}
