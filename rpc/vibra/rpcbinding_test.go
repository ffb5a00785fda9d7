package vibra

import (
	"errors"
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

type testInv struct {
	err error
	res *result.Invoke
}

func (t *testInv) Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	return t.res, t.err
}
func (t *testInv) CallAndExpandIterator(contract util.Uint160, operation string, i int, params ...any) (*result.Invoke, error) {
	return t.res, t.err
}
func (t *testInv) TraverseIterator(uuid.UUID, *result.Iterator, int) ([]stackitem.Item, error) {
	return nil, nil
}
func (t *testInv) TerminateSession(uuid.UUID) error {
	return nil
}

type testAct struct {
	testInv
	method string
	params []any
}

func (t *testAct) MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error) {
	t.method, t.params = method, params
	return new(transaction.Transaction), t.err
}
func (t *testAct) MakeRun(script []byte) (*transaction.Transaction, error) {
	return new(transaction.Transaction), t.err
}
func (t *testAct) MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error) {
	t.method, t.params = method, params
	return new(transaction.Transaction), t.err
}
func (t *testAct) MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error) {
	return new(transaction.Transaction), t.err
}
func (t *testAct) SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error) {
	t.method, t.params = method, params
	return util.Uint256{1}, 42, t.err
}
func (t *testAct) SendRun(script []byte) (util.Uint256, uint32, error) {
	return util.Uint256{1}, 42, t.err
}

func TestReader(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	ti.err = errors.New("bad")
	_, err := r.Allowance(util.Uint160{4}, util.Uint160{5})
	require.Error(t, err)
	_, err = r.Symbol()
	require.Error(t, err)

	ti.err = nil
	ti.res = &result.Invoke{
		State: "HALT",
		Stack: []stackitem.Item{stackitem.Make(1000)},
	}
	a, err := r.Allowance(util.Uint160{4}, util.Uint160{5})
	require.NoError(t, err)
	require.EqualValues(t, 1000, a.Int64())

	ti.res = &result.Invoke{
		State: "HALT",
		Stack: []stackitem.Item{stackitem.Make("VIB")},
	}
	sym, err := r.Symbol()
	require.NoError(t, err)
	require.Equal(t, "VIB", sym)

	ti.res = &result.Invoke{
		State: "HALT",
		Stack: []stackitem.Item{stackitem.Make(util.Uint160{9}.BytesBE())},
	}
	owner, err := r.Owner()
	require.NoError(t, err)
	require.Equal(t, util.Uint160{9}, owner)

	ti.res = &result.Invoke{
		State:          "FAULT",
		FaultException: "unauthorized",
	}
	_, err = r.Version()
	require.Error(t, err)
}

func TestContract(t *testing.T) {
	ta := new(testAct)
	c := New(ta, util.Uint160{1, 2, 3})

	owner, spender := util.Uint160{4}, util.Uint160{5}

	_, _, err := c.Approve(owner, spender, big.NewInt(10))
	require.NoError(t, err)
	require.Equal(t, "approve", ta.method)
	require.Equal(t, []any{owner, spender, big.NewInt(10)}, ta.params)

	_, err = c.TransferFromTransaction(spender, owner, util.Uint160{6}, big.NewInt(3), nil)
	require.NoError(t, err)
	require.Equal(t, "transferFrom", ta.method)
	require.Len(t, ta.params, 5)

	_, err = c.MintUnsigned(owner, big.NewInt(7))
	require.NoError(t, err)
	require.Equal(t, "mint", ta.method)
}

func TestEventsFromApplicationLog(t *testing.T) {
	to := util.Uint160{1, 2, 3}
	log := &result.ApplicationLog{
		Executions: []state.Execution{{
			Events: []state.NotificationEvent{
				{
					Name: "Transfer",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Null{},
						stackitem.Make(to.BytesBE()),
						stackitem.Make(100),
					}),
				},
				{
					Name: "Approval",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make(to.BytesBE()),
						stackitem.Make(util.Uint160{4}.BytesBE()),
						stackitem.Make(50),
					}),
				},
			},
		}},
	}

	transfers, err := TransferEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, transfers, 1)
	require.Equal(t, util.Uint160{}, transfers[0].From)
	require.Equal(t, to, transfers[0].To)
	require.EqualValues(t, 100, transfers[0].Amount.Int64())

	approvals, err := ApprovalEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, approvals, 1)
	require.Equal(t, util.Uint160{4}, approvals[0].Spender)
	require.EqualValues(t, 50, approvals[0].Amount.Int64())

	log.Executions[0].Events[1].Item = stackitem.NewArray([]stackitem.Item{
		stackitem.Null{},
		stackitem.Make(to.BytesBE()),
		stackitem.Make(50),
	})
	_, err = ApprovalEventsFromApplicationLog(log)
	require.Error(t, err)
}
