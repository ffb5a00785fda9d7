package trust

import (
	"errors"
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

type testAct struct {
	err    error
	res    *result.Invoke
	method string
	params []any
}

func (t *testAct) Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	return t.res, t.err
}
func (t *testAct) MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error) {
	t.method, t.params = method, params
	return new(transaction.Transaction), t.err
}
func (t *testAct) MakeRun(script []byte) (*transaction.Transaction, error) {
	return nil, t.err
}
func (t *testAct) MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error) {
	t.method, t.params = method, params
	return new(transaction.Transaction), t.err
}
func (t *testAct) MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error) {
	return nil, t.err
}
func (t *testAct) SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error) {
	t.method, t.params = method, params
	return util.Uint256{1}, 42, t.err
}
func (t *testAct) SendRun(script []byte) (util.Uint256, uint32, error) {
	return util.Uint256{}, 0, t.err
}

func TestReader(t *testing.T) {
	ta := new(testAct)
	r := NewReader(ta, util.Uint160{1, 2, 3})

	ta.err = errors.New("bad")
	_, err := r.MinBalance()
	require.Error(t, err)

	ta.err = nil
	ta.res = &result.Invoke{
		State: "HALT",
		Stack: []stackitem.Item{stackitem.Make(1_000_000)},
	}
	m, err := r.MinBalance()
	require.NoError(t, err)
	require.EqualValues(t, 1_000_000, m.Int64())

	ta.res = &result.Invoke{
		State: "HALT",
		Stack: []stackitem.Item{stackitem.Make(util.Uint160{8}.BytesBE())},
	}
	org, err := r.Organization()
	require.NoError(t, err)
	require.Equal(t, util.Uint160{8}, org)
}

func TestContract(t *testing.T) {
	ta := new(testAct)
	c := New(ta, util.Uint160{1, 2, 3})

	from := util.Uint160{4}
	_, _, err := c.Deposit(from, big.NewInt(5))
	require.NoError(t, err)
	require.Equal(t, "deposit", ta.method)
	require.Equal(t, []any{from, big.NewInt(5)}, ta.params)

	_, err = c.WithdrawAllTransaction()
	require.NoError(t, err)
	require.Equal(t, "withdrawAll", ta.method)

	_, err = c.TransferOwnershipUnsigned(from)
	require.NoError(t, err)
	require.Equal(t, "transferOwnership", ta.method)
	require.Equal(t, []any{from}, ta.params)
}

func TestEventsFromApplicationLog(t *testing.T) {
	owner := util.Uint160{1, 2, 3}
	log := &result.ApplicationLog{
		Executions: []state.Execution{{
			Events: []state.NotificationEvent{
				{
					Name: "Withdrawal",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make(owner.BytesBE()),
						stackitem.Make(4),
					}),
				},
				{
					Name: "LowBalance",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make(owner.BytesBE()),
						stackitem.Make(1),
					}),
				},
			},
		}},
	}

	withdrawals, err := WithdrawalEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, withdrawals, 1)
	require.Equal(t, owner, withdrawals[0].To)
	require.EqualValues(t, 4, withdrawals[0].Amount.Int64())

	low, err := LowBalanceEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, low, 1)
	require.Equal(t, owner, low[0].Holder)
	require.EqualValues(t, 1, low[0].Balance.Int64())

	fees, err := PaymentEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Empty(t, fees)

	log.Executions[0].Events[1].Item = nil
	_, err = LowBalanceEventsFromApplicationLog(log)
	require.Error(t, err)
}
