/*
Package contracts provides access to compiled Vibra contracts.

Every contract directory is expected to hold contract.nef and manifest.json
files produced by `make build`.
*/
package contracts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
)

const (
	vibraDir  = "vibra"
	escrowDir = "escrow"
	trustDir  = "trust"

	nefName      = "contract.nef"
	manifestName = "manifest.json"
)

// Contract groups information about Neo contract.
type Contract struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// Set groups all Vibra contracts.
type Set struct {
	Vibra  Contract
	Escrow Contract
	Trust  Contract
}

var (
	errInvalidNEF      = errors.New("invalid NEF")
	errInvalidManifest = errors.New("invalid manifest")
)

// Read reads compiled Vibra, Escrow and Trust contracts from the
// corresponding subdirectories of the given file system.
func Read(_fs fs.FS) (Set, error) {
	var (
		res Set
		err error
	)

	for _, c := range []struct {
		dir string
		dst *Contract
	}{
		{vibraDir, &res.Vibra},
		{escrowDir, &res.Escrow},
		{trustDir, &res.Trust},
	} {
		*c.dst, err = readContractFromDir(_fs, c.dir)
		if err != nil {
			return res, fmt.Errorf("read contract %s: %w", c.dir, err)
		}
	}

	return res, nil
}

func readContractFromDir(_fs fs.FS, dir string) (Contract, error) {
	var c Contract

	// fs.FS uses "/" even on Windows, so filepath.Join() is not applicable.
	fNEF, err := _fs.Open(dir + "/" + nefName)
	if err != nil {
		return c, fmt.Errorf("open NEF: %w", err)
	}
	defer fNEF.Close()

	fManifest, err := _fs.Open(dir + "/" + manifestName)
	if err != nil {
		return c, fmt.Errorf("open manifest: %w", err)
	}
	defer fManifest.Close()

	bReader := io.NewBinReaderFromIO(fNEF)
	c.NEF.DecodeBinary(bReader)
	if bReader.Err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidNEF, bReader.Err)
	}

	err = json.NewDecoder(fManifest).Decode(&c.Manifest)
	if err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidManifest, err)
	}

	return c, nil
}
