// Package escrow contains RPC wrappers for Vibra Escrow contract.
package escrow

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// DepositEvent represents "Deposit" event emitted by the contract.
type DepositEvent struct {
	From util.Uint160
	Value *big.Int
}

// PaymentEvent represents "Payment" event emitted by the contract.
type PaymentEvent struct {
	To util.Uint160
	Value *big.Int
}

// RefundEvent represents "Refund" event emitted by the contract.
type RefundEvent struct {
	To util.Uint160
	Value *big.Int
}

// DisputeEvent represents "Dispute" event emitted by the contract.
type DisputeEvent struct{}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Arbiter invokes `arbiter` method of contract.
func (c *ContractReader) Arbiter() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "arbiter"))
}

// Buyer invokes `buyer` method of contract.
func (c *ContractReader) Buyer() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "buyer"))
}

// Seller invokes `seller` method of contract.
func (c *ContractReader) Seller() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "seller"))
}

// State invokes `state` method of contract.
func (c *ContractReader) State() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "state"))
}

// Token invokes `token` method of contract.
func (c *ContractReader) Token() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "token"))
}

// Value invokes `value` method of contract.
func (c *ContractReader) Value() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "value"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// ConfirmDelivery creates a transaction invoking `confirmDelivery` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ConfirmDelivery() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "confirmDelivery")
}

// ConfirmDeliveryTransaction creates a transaction invoking `confirmDelivery` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ConfirmDeliveryTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "confirmDelivery")
}

// ConfirmDeliveryUnsigned creates a transaction invoking `confirmDelivery` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ConfirmDeliveryUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "confirmDelivery", nil)
}

// Deposit creates a transaction invoking `deposit` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Deposit(amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "deposit", amount)
}

// DepositTransaction creates a transaction invoking `deposit` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DepositTransaction(amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "deposit", amount)
}

// DepositUnsigned creates a transaction invoking `deposit` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DepositUnsigned(amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "deposit", nil, amount)
}

// Dispute creates a transaction invoking `dispute` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Dispute() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "dispute")
}

// DisputeTransaction creates a transaction invoking `dispute` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DisputeTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "dispute")
}

// DisputeUnsigned creates a transaction invoking `dispute` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DisputeUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "dispute", nil)
}

// ProcessRefund creates a transaction invoking `processRefund` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ProcessRefund() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "processRefund")
}

// ProcessRefundTransaction creates a transaction invoking `processRefund` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ProcessRefundTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "processRefund")
}

// ProcessRefundUnsigned creates a transaction invoking `processRefund` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ProcessRefundUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "processRefund", nil)
}

// DepositEventsFromApplicationLog retrieves a set of all emitted events
// with "Deposit" name from the provided [result.ApplicationLog].
func DepositEventsFromApplicationLog(log *result.ApplicationLog) ([]*DepositEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DepositEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Deposit" {
				continue
			}
			event := new(DepositEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DepositEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DepositEvent or
// returns an error if it's not possible to do to so.
func (e *DepositEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.From, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	e.Value, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Value: %w", err)
	}

	return nil
}

// PaymentEventsFromApplicationLog retrieves a set of all emitted events
// with "Payment" name from the provided [result.ApplicationLog].
func PaymentEventsFromApplicationLog(log *result.ApplicationLog) ([]*PaymentEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*PaymentEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Payment" {
				continue
			}
			event := new(PaymentEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize PaymentEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to PaymentEvent or
// returns an error if it's not possible to do to so.
func (e *PaymentEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.To, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	index++
	e.Value, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Value: %w", err)
	}

	return nil
}

// RefundEventsFromApplicationLog retrieves a set of all emitted events
// with "Refund" name from the provided [result.ApplicationLog].
func RefundEventsFromApplicationLog(log *result.ApplicationLog) ([]*RefundEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RefundEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Refund" {
				continue
			}
			event := new(RefundEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RefundEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RefundEvent or
// returns an error if it's not possible to do to so.
func (e *RefundEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.To, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	index++
	e.Value, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Value: %w", err)
	}

	return nil
}

// DisputeEventsFromApplicationLog retrieves a set of all emitted events
// with "Dispute" name from the provided [result.ApplicationLog].
func DisputeEventsFromApplicationLog(log *result.ApplicationLog) ([]*DisputeEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DisputeEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Dispute" {
				continue
			}
			event := new(DisputeEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DisputeEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DisputeEvent or
// returns an error if it's not possible to do to so.
func (e *DisputeEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 0 {
		return errors.New("wrong number of structure elements")
	}
	return nil
}
