package main

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
	"github.com/vibra-labs/vibra-contract/deploy"
	"gopkg.in/yaml.v3"
)

var (
	buyer  = util.Uint160{1}
	seller = util.Uint160{2}
	org    = util.Uint160{3}
)

func TestReadPlan(t *testing.T) {
	src := `
escrows:
  - name: bike
    buyer: ` + address.Uint160ToString(buyer) + `
    seller: ` + address.Uint160ToString(seller) + `
    value: "1000000000000000000"
trusts:
  - beneficiary: ` + address.Uint160ToString(buyer) + `
    organization: ` + address.Uint160ToString(org) + `
    minBalance: "1"
`
	var prm deploy.Prm
	require.NoError(t, readPlan(strings.NewReader(src), &prm))

	require.Equal(t, util.Uint160{}, prm.Token)
	require.Len(t, prm.Escrows, 1)
	require.Equal(t, "bike", prm.Escrows[0].Name)
	require.Equal(t, buyer, prm.Escrows[0].Buyer)
	require.Equal(t, seller, prm.Escrows[0].Seller)
	require.Equal(t, "1000000000000000000", prm.Escrows[0].Value.String())

	require.Len(t, prm.Trusts, 1)
	require.Empty(t, prm.Trusts[0].Name)
	require.Equal(t, buyer, prm.Trusts[0].Beneficiary)
	require.Equal(t, org, prm.Trusts[0].Organization)
	require.EqualValues(t, 1, prm.Trusts[0].MinBalance.Int64())
}

func TestReadPlanEmpty(t *testing.T) {
	var prm deploy.Prm
	require.NoError(t, readPlan(strings.NewReader(""), &prm))
	require.Empty(t, prm.Escrows)
	require.Empty(t, prm.Trusts)
}

func TestReadPlanErrors(t *testing.T) {
	for name, src := range map[string]string{
		"not YAML":      "escrows: [",
		"token":         "token: NotAnAddress",
		"buyer":         "escrows:\n  - buyer: x\n    seller: " + address.Uint160ToString(seller) + "\n    value: \"1\"",
		"negative":      "trusts:\n  - beneficiary: " + address.Uint160ToString(buyer) + "\n    organization: " + address.Uint160ToString(org) + "\n    minBalance: \"-1\"",
		"missing value": "escrows:\n  - buyer: " + address.Uint160ToString(buyer) + "\n    seller: " + address.Uint160ToString(seller),
	} {
		t.Run(name, func(t *testing.T) {
			var prm deploy.Prm
			require.Error(t, readPlan(strings.NewReader(src), &prm))
		})
	}
}

func TestWriteResult(t *testing.T) {
	var buf bytes.Buffer
	res := deploy.Result{Token: buyer, Trusts: []util.Uint160{org}}
	require.NoError(t, writeResult(&buf, res))

	var out deployed
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))
	require.Equal(t, address.Uint160ToString(buyer), out.Token)
	require.Empty(t, out.Escrows)
	require.Equal(t, []string{address.Uint160ToString(org)}, out.Trusts)
}

func TestParseAmount(t *testing.T) {
	v, err := parseAmount("100000000000000000000000000")
	require.NoError(t, err)
	require.Zero(t, v.Cmp(new(big.Int).Exp(big.NewInt(10), big.NewInt(26), nil)))

	_, err = parseAmount("1.5")
	require.Error(t, err)
}
