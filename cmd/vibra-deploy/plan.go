package main

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/vibra-labs/vibra-contract/deploy"
	"gopkg.in/yaml.v3"
)

// plan is a YAML deployment plan. Addresses are Neo N3 addresses, amounts are
// decimal strings in the smallest Vibra units.
type plan struct {
	Token   string `yaml:"token"`
	Escrows []struct {
		Name   string `yaml:"name"`
		Buyer  string `yaml:"buyer"`
		Seller string `yaml:"seller"`
		Value  string `yaml:"value"`
	} `yaml:"escrows"`
	Trusts []struct {
		Name         string `yaml:"name"`
		Beneficiary  string `yaml:"beneficiary"`
		Organization string `yaml:"organization"`
		MinBalance   string `yaml:"minBalance"`
	} `yaml:"trusts"`
}

// deployed is printed to stdout after successful deployment.
type deployed struct {
	Token   string   `yaml:"token"`
	Escrows []string `yaml:"escrows,omitempty"`
	Trusts  []string `yaml:"trusts,omitempty"`
}

func readPlan(r io.Reader, prm *deploy.Prm) error {
	var p plan

	err := yaml.NewDecoder(r).Decode(&p)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode YAML: %w", err)
	}

	if p.Token != "" {
		prm.Token, err = address.StringToUint160(p.Token)
		if err != nil {
			return fmt.Errorf("token: %w", err)
		}
	}

	for i, e := range p.Escrows {
		var ep = deploy.EscrowPrm{Name: e.Name}

		err = parseAddresses(map[string]*util.Uint160{
			"buyer":  &ep.Buyer,
			"seller": &ep.Seller,
		}, map[string]string{
			"buyer":  e.Buyer,
			"seller": e.Seller,
		})
		if err == nil {
			ep.Value, err = parseAmount(e.Value)
		}
		if err != nil {
			return fmt.Errorf("escrow #%d: %w", i, err)
		}

		prm.Escrows = append(prm.Escrows, ep)
	}

	for i, tr := range p.Trusts {
		var tp = deploy.TrustPrm{Name: tr.Name}

		err = parseAddresses(map[string]*util.Uint160{
			"beneficiary":  &tp.Beneficiary,
			"organization": &tp.Organization,
		}, map[string]string{
			"beneficiary":  tr.Beneficiary,
			"organization": tr.Organization,
		})
		if err == nil {
			tp.MinBalance, err = parseAmount(tr.MinBalance)
		}
		if err != nil {
			return fmt.Errorf("trust #%d: %w", i, err)
		}

		prm.Trusts = append(prm.Trusts, tp)
	}

	return nil
}

func parseAddresses(dst map[string]*util.Uint160, src map[string]string) error {
	var err error
	for k, v := range src {
		*dst[k], err = address.StringToUint160(v)
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
	}
	return nil
}

func parseAmount(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	return v, nil
}

func writeResult(w io.Writer, res deploy.Result) error {
	out := deployed{Token: address.Uint160ToString(res.Token)}
	for _, h := range res.Escrows {
		out.Escrows = append(out.Escrows, address.Uint160ToString(h))
	}
	for _, h := range res.Trusts {
		out.Trusts = append(out.Trusts, address.Uint160ToString(h))
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()

	return enc.Encode(out)
}
