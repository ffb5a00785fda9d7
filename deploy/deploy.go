package deploy

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/vibra-labs/vibra-contract/contracts"
	"go.uber.org/zap"
)

// Deployer sends contract deployment transactions to the blockchain.
// [management.Contract] implements it.
type Deployer interface {
	Deploy(nefFile *nef.File, manifest *manifest.Manifest, data any) (util.Uint256, uint32, error)
}

// Blockchain groups services provided by particular Neo blockchain network
// that are required for Vibra deployment. It's usually [actor.Actor]
// combined with [rpcclient.Client].
type Blockchain interface {
	// WaitAny waits until one of the transactions is persisted or becomes
	// invalid after vub height. WaitAny aborts by context.
	WaitAny(ctx context.Context, vub uint32, hashes ...util.Uint256) (*state.AppExecResult, error)

	// GetContractStateByHash returns network state of the smart contract by
	// its address. It returns error with 'Unknown contract' substring if
	// requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// EscrowPrm groups deployment parameters of the Escrow contract instance.
type EscrowPrm struct {
	// Manifest name of the instance. Random name is used if empty.
	Name   string
	Buyer  util.Uint160
	Seller util.Uint160
	// Escrow value in the smallest Vibra units.
	Value *big.Int
}

// TrustPrm groups deployment parameters of the Trust contract instance.
type TrustPrm struct {
	// Manifest name of the instance. Random name is used if empty.
	Name         string
	Beneficiary  util.Uint160
	Organization util.Uint160
	// Minimal balance in the smallest Vibra units.
	MinBalance *big.Int
}

// Prm groups all parameters of the Vibra deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	Deployer   Deployer
	Blockchain Blockchain

	// Account signing deployment transactions. It becomes the owner of the
	// Vibra token, arbiter of escrows and owner of trusts.
	Sender util.Uint160

	Contracts contracts.Set

	// Vibra token to use. New token is deployed if zero.
	Token util.Uint160

	Escrows []EscrowPrm
	Trusts  []TrustPrm
}

// Result groups addresses of the deployed contracts.
type Result struct {
	Token   util.Uint160
	Escrows []util.Uint160
	Trusts  []util.Uint160
}

var errMissingParameter = errors.New("missing parameter")

// Deploy deploys Vibra token (unless Prm.Token is set) and then all the
// requested Escrow and Trust instances bound to it. Contracts already present
// on the chain are not deployed again, so Deploy can be safely repeated after
// failure with the same instance names.
//
// Deploy aborts by context or on the first failed transaction.
func Deploy(ctx context.Context, prm Prm) (Result, error) {
	var (
		res Result
		err error
	)

	if prm.Logger == nil {
		prm.Logger = zap.NewNop()
	}

	res.Token = prm.Token
	if res.Token.Equals(util.Uint160{}) {
		prm.Logger.Info("deploying Vibra token...")

		res.Token, err = deployContract(ctx, prm, prm.Contracts.Vibra, "", nil)
		if err != nil {
			return res, fmt.Errorf("deploy Vibra token: %w", err)
		}

		prm.Logger.Info("Vibra token successfully deployed", zap.Stringer("address", res.Token))
	}

	for i, e := range prm.Escrows {
		if e.Value == nil {
			return res, fmt.Errorf("escrow #%d: %w: value", i, errMissingParameter)
		}

		h, err := deployContract(ctx, prm, prm.Contracts.Escrow, e.Name,
			[]any{res.Token, e.Value, e.Buyer, e.Seller})
		if err != nil {
			return res, fmt.Errorf("deploy escrow #%d: %w", i, err)
		}

		prm.Logger.Info("escrow successfully deployed",
			zap.Stringer("address", h),
			zap.Stringer("buyer", e.Buyer),
			zap.Stringer("seller", e.Seller),
			zap.Stringer("value", e.Value))

		res.Escrows = append(res.Escrows, h)
	}

	for i, tr := range prm.Trusts {
		if tr.MinBalance == nil {
			return res, fmt.Errorf("trust #%d: %w: min balance", i, errMissingParameter)
		}

		h, err := deployContract(ctx, prm, prm.Contracts.Trust, tr.Name,
			[]any{res.Token, tr.Beneficiary, tr.Organization, tr.MinBalance})
		if err != nil {
			return res, fmt.Errorf("deploy trust #%d: %w", i, err)
		}

		prm.Logger.Info("trust successfully deployed",
			zap.Stringer("address", h),
			zap.Stringer("beneficiary", tr.Beneficiary),
			zap.Stringer("organization", tr.Organization),
			zap.Stringer("min balance", tr.MinBalance))

		res.Trusts = append(res.Trusts, h)
	}

	return res, nil
}

// deployContract deploys contract with the given manifest name suffix and
// waits for the transaction to be persisted. Random suffix is used if name
// is empty.
func deployContract(ctx context.Context, prm Prm, c contracts.Contract, name string, data any) (util.Uint160, error) {
	if err := ctx.Err(); err != nil {
		return util.Uint160{}, err
	}

	m := c.Manifest
	if data != nil {
		if name == "" {
			name = uuid.NewString()
		}
		m.Name += " " + name
	}

	h := state.CreateContractHash(prm.Sender, c.NEF.Checksum, m.Name)
	l := prm.Logger.With(zap.String("name", m.Name), zap.Stringer("address", h))

	_, err := prm.Blockchain.GetContractStateByHash(h)
	if err == nil {
		l.Info("contract is already deployed, skip")
		return h, nil
	} else if !isErrContractNotFound(err) {
		return util.Uint160{}, fmt.Errorf("get contract state: %w", err)
	}

	txHash, vub, err := prm.Deployer.Deploy(&c.NEF, &m, data)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("send deployment transaction: %w", err)
	}

	l.Debug("deployment transaction sent, waiting...",
		zap.Stringer("tx", txHash), zap.Uint32("vub", vub))

	aer, err := prm.Blockchain.WaitAny(ctx, vub, txHash)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("wait for deployment transaction %s: %w", txHash, err)
	}

	if aer.VMState != vmstate.Halt {
		return util.Uint160{}, fmt.Errorf("deployment transaction %s failed: %s", txHash, aer.FaultException)
	}

	return h, nil
}

// isErrContractNotFound checks whether the error is returned for missing
// contract by Neo RPC server.
func isErrContractNotFound(err error) bool {
	return strings.Contains(err.Error(), "Unknown contract")
}
