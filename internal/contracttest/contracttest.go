// Package contracttest contains helpers to deploy Vibra contracts to a
// single-node test chain.
package contracttest

import (
	"math/big"
	"path"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

// Decimals multiplier of Vibra token, 1 VIB = 10^18 units.
var Decimals = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// VIB returns n tokens expressed in the smallest units.
func VIB(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), Decimals)
}

// NewExecutor creates executor over a new single-node chain. The committee
// account of the chain signs all deployments.
func NewExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// Path returns path to the repository directory, e.g. Path("vibra").
func Path(dir string) string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", dir)
}

// Compile compiles contract from the repository directory using its
// config.yml.
func Compile(t *testing.T, e *neotest.Executor, dir string) *neotest.Contract {
	p := Path(dir)
	return neotest.CompileFile(t, e.CommitteeHash, p, path.Join(p, "config.yml"))
}

// Instance returns a copy of the compiled contract with a unique manifest
// name, so that the same code can be deployed from the same account more
// than once.
func Instance(e *neotest.Executor, c *neotest.Contract) *neotest.Contract {
	m := *c.Manifest
	m.Name = c.Manifest.Name + " " + uuid.NewString()

	return &neotest.Contract{
		Hash:     state.CreateContractHash(e.CommitteeHash, c.NEF.Checksum, m.Name),
		NEF:      c.NEF,
		Manifest: &m,
	}
}

// DeployVibra deploys Vibra token and returns committee invoker of it. The
// committee owns the whole initial supply.
func DeployVibra(t *testing.T, e *neotest.Executor) *neotest.ContractInvoker {
	c := Compile(t, e, "vibra")
	e.DeployContract(t, c, nil)
	return e.CommitteeInvoker(c.Hash)
}

// DeployEscrow deploys a new escrow instance with the committee as arbiter.
func DeployEscrow(t *testing.T, e *neotest.Executor, token, buyer, seller util.Uint160, value *big.Int) *neotest.ContractInvoker {
	c := Instance(e, Compile(t, e, "escrow"))
	e.DeployContract(t, c, []any{token, value, buyer, seller})
	return e.CommitteeInvoker(c.Hash)
}

// DeployTrust deploys a new trust instance with the committee as owner.
func DeployTrust(t *testing.T, e *neotest.Executor, token, beneficiary, organization util.Uint160, minBalance *big.Int) *neotest.ContractInvoker {
	c := Instance(e, Compile(t, e, "trust"))
	e.DeployContract(t, c, []any{token, beneficiary, organization, minBalance})
	return e.CommitteeInvoker(c.Hash)
}

// DeployReceiver deploys contract recording the last NEP-17 payment it got.
func DeployReceiver(t *testing.T, e *neotest.Executor) *neotest.ContractInvoker {
	c := Instance(e, Compile(t, e, "internal/testcontracts/nep17recv"))
	e.DeployContract(t, c, nil)
	return e.CommitteeInvoker(c.Hash)
}

// Fund transfers amount of Vibra from the committee to the account.
func Fund(t *testing.T, token *neotest.ContractInvoker, to util.Uint160, amount *big.Int) {
	token.Invoke(t, true, "transfer", token.CommitteeHash, to, amount, nil)
}

// BalanceOf returns Vibra balance of the account.
func BalanceOf(t *testing.T, token *neotest.ContractInvoker, account util.Uint160) *big.Int {
	s, err := token.TestInvoke(t, "balanceOf", account)
	require.NoError(t, err)
	v, err := s.Pop().Item().TryInteger()
	require.NoError(t, err)
	return v
}

// Event returns the only notification with the given name produced by the
// contract in the transaction.
func Event(t *testing.T, c *neotest.ContractInvoker, h util.Uint256, name string) []stackitem.Item {
	var found []stackitem.Item

	aer := c.CheckHalt(t, h)
	for _, ev := range aer.Events {
		if ev.ScriptHash.Equals(c.Hash) && ev.Name == name {
			require.Nil(t, found, "%s notification is produced twice", name)
			found = ev.Item.Value().([]stackitem.Item)
		}
	}
	require.NotNil(t, found, "%s notification is missing", name)

	return found
}

// NoEvent checks that the contract produced no notification with the given
// name in the transaction.
func NoEvent(t *testing.T, c *neotest.ContractInvoker, h util.Uint256, name string) {
	aer := c.CheckHalt(t, h)
	for _, ev := range aer.Events {
		if ev.ScriptHash.Equals(c.Hash) {
			require.NotEqual(t, name, ev.Name)
		}
	}
}

// RequireHash checks that stack item is the expected script hash.
func RequireHash(t *testing.T, expected util.Uint160, item stackitem.Item) {
	b, err := item.TryBytes()
	require.NoError(t, err)
	actual, err := util.Uint160DecodeBytesBE(b)
	require.NoError(t, err)
	require.Equal(t, expected, actual)
}

// RequireInt checks that stack item is the expected integer.
func RequireInt(t *testing.T, expected *big.Int, item stackitem.Item) {
	actual, err := item.TryInteger()
	require.NoError(t, err)
	require.Zero(t, expected.Cmp(actual), "expected %s, got %s", expected, actual)
}
