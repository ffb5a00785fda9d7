package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/vibra-labs/vibra-contract/contracts"
	"github.com/vibra-labs/vibra-contract/deploy"
	"go.uber.org/zap"
)

// passwordEnv is an environment variable holding the wallet account password.
const passwordEnv = "VIBRA_WALLET_PASSWORD"

type blockchain struct {
	*actor.Actor
	*rpcclient.Client
}

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	walletPath := flag.String("wallet", "", "Path to the NEP-6 wallet file")
	accAddress := flag.String("address", "", "Address of the wallet account signing transactions (default account if empty)")
	planPath := flag.String("plan", "", "Path to the YAML deployment plan (Vibra token only if empty)")
	contractsDir := flag.String("contracts", ".", "Root directory of the compiled contracts")
	debug := flag.Bool("debug", false, "Enable debug logs")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *walletPath == "":
		log.Fatal("missing wallet")
	}

	logCfg := zap.NewProductionConfig()
	if *debug {
		logCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := logCfg.Build()
	if err != nil {
		log.Fatal(fmt.Errorf("init logger: %w", err))
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err = run(ctx, logger, *neoRPCEndpoint, *walletPath, *accAddress, *planPath, *contractsDir)
	if err != nil {
		logger.Fatal("deployment failed", zap.Error(err))
	}
}

func run(ctx context.Context, logger *zap.Logger, endpoint, walletPath, accAddress, planPath, contractsDir string) error {
	var prm = deploy.Prm{Logger: logger}

	set, err := contracts.Read(os.DirFS(contractsDir))
	if err != nil {
		return fmt.Errorf("read compiled contracts: %w", err)
	}
	prm.Contracts = set

	if planPath != "" {
		f, err := os.Open(planPath)
		if err != nil {
			return fmt.Errorf("open deployment plan: %w", err)
		}
		defer f.Close()

		err = readPlan(f, &prm)
		if err != nil {
			return fmt.Errorf("read deployment plan: %w", err)
		}
	}

	acc, err := openAccount(walletPath, accAddress)
	if err != nil {
		return err
	}
	prm.Sender = acc.ScriptHash()

	c, err := rpcclient.New(ctx, endpoint, rpcclient.Options{})
	if err != nil {
		return fmt.Errorf("init RPC client: %w", err)
	}
	defer c.Close()

	err = c.Init()
	if err != nil {
		return fmt.Errorf("init RPC client: %w", err)
	}

	act, err := actor.NewSimple(c, acc)
	if err != nil {
		return fmt.Errorf("init transaction sender: %w", err)
	}

	prm.Deployer = management.New(act)
	prm.Blockchain = blockchain{act, c}

	logger.Info("deploying Vibra contracts...", zap.String("sender", address.Uint160ToString(prm.Sender)))

	res, err := deploy.Deploy(ctx, prm)
	if err != nil {
		return err
	}

	return writeResult(os.Stdout, res)
}

func openAccount(walletPath, accAddress string) (*wallet.Account, error) {
	w, err := wallet.NewWalletFromFile(walletPath)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}

	var acc *wallet.Account
	if accAddress == "" {
		acc = w.GetAccount(w.GetChangeAddress())
	} else {
		h, err := address.StringToUint160(accAddress)
		if err != nil {
			return nil, fmt.Errorf("account address: %w", err)
		}
		acc = w.GetAccount(h)
	}
	if acc == nil {
		return nil, errors.New("account is missing in the wallet")
	}

	err = acc.Decrypt(os.Getenv(passwordEnv), w.Scrypt)
	if err != nil {
		return nil, fmt.Errorf("decrypt account: %w", err)
	}

	return acc, nil
}
