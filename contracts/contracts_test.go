package contracts

import (
	"encoding/json"
	"testing"
	"testing/fstest"

	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/stretchr/testify/require"
)

func validFS(t *testing.T) fstest.MapFS {
	_fs := fstest.MapFS{}
	for _, dir := range []string{vibraDir, escrowDir, trustDir} {
		_, bNEF := anyValidNEF(t)
		_, bManifest := anyValidManifest(t, dir)
		_fs[dir+"/"+nefName] = &fstest.MapFile{Data: bNEF}
		_fs[dir+"/"+manifestName] = &fstest.MapFile{Data: bManifest}
	}
	return _fs
}

func TestRead(t *testing.T) {
	set, err := Read(validFS(t))
	require.NoError(t, err)
	require.Equal(t, vibraDir, set.Vibra.Manifest.Name)
	require.Equal(t, escrowDir, set.Escrow.Manifest.Name)
	require.Equal(t, trustDir, set.Trust.Manifest.Name)
}

func TestReadMissingFiles(t *testing.T) {
	_fs := fstest.MapFS{}

	// Missing NEF
	_, err := Read(_fs)
	require.Error(t, err)

	// Missing manifest.
	_fs[vibraDir+"/"+nefName] = &fstest.MapFile{}
	_, err = Read(_fs)
	require.Error(t, err)

	// Missing trust contract.
	_fs = validFS(t)
	delete(_fs, trustDir+"/"+nefName)
	_, err = Read(_fs)
	require.ErrorContains(t, err, trustDir)
}

func TestReadInvalidFormat(t *testing.T) {
	var (
		_fs          = validFS(t)
		nefPath      = escrowDir + "/" + nefName
		manifestPath = escrowDir + "/" + manifestName
	)

	_, validNEF := anyValidNEF(t)
	_, validManifest := anyValidManifest(t, "zero")

	_fs[nefPath] = &fstest.MapFile{Data: []byte("not a NEF")}
	_fs[manifestPath] = &fstest.MapFile{Data: validManifest}

	_, err := Read(_fs)
	require.ErrorIs(t, err, errInvalidNEF)

	_fs[nefPath] = &fstest.MapFile{Data: validNEF}
	_fs[manifestPath] = &fstest.MapFile{Data: []byte("not a manifest")}

	_, err = Read(_fs)
	require.ErrorIs(t, err, errInvalidManifest)
}

func anyValidNEF(tb testing.TB) (nef.File, []byte) {
	script := make([]byte, 32)

	_nef, err := nef.NewFile(script)
	require.NoError(tb, err)

	bNEF, err := _nef.Bytes()
	require.NoError(tb, err)

	return *_nef, bNEF
}

func anyValidManifest(tb testing.TB, name string) (manifest.Manifest, []byte) {
	_manifest := manifest.NewManifest(name)

	jManifest, err := json.Marshal(_manifest)
	require.NoError(tb, err)

	return *_manifest, jManifest
}
