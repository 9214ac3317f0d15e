package commands

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crxkit/internal/crypto"
	"crxkit/internal/domain"
)

// run executes the CLI with args and returns what it wrote to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func keygen(t *testing.T, home string, extra ...string) domain.Identifier {
	t.Helper()
	out, err := run(t, append([]string{"keygen", "--home", home}, extra...)...)
	require.NoError(t, err)
	_, id, found := strings.Cut(strings.TrimSpace(out), "Extension ID: ")
	require.True(t, found, "unexpected keygen output %q", out)
	return domain.Identifier(id)
}

func TestKeygenAndID(t *testing.T) {
	home := t.TempDir()
	id := keygen(t, home)
	assert.Len(t, id, crypto.IdentifierLength)

	out, err := run(t, "id", "--home", home)
	require.NoError(t, err)
	assert.Equal(t, string(id), strings.TrimSpace(out))

	_, err = run(t, "keygen", "--home", home)
	require.ErrorIs(t, err, domain.ErrKeyExists)

	second := keygen(t, home, "--force")
	assert.NotEqual(t, id, second)
}

func TestKeygen_Passphrase(t *testing.T) {
	home := t.TempDir()
	id := keygen(t, home, "-p", "hunter2")

	_, err := os.Stat(filepath.Join(home, "key.pem.enc"))
	require.NoError(t, err)

	_, err = run(t, "id", "--home", home)
	require.ErrorIs(t, err, domain.ErrWrongPassphrase)

	out, err := run(t, "id", "--home", home, "-p", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, string(id), strings.TrimSpace(out))
}

func TestPubkey(t *testing.T) {
	home := t.TempDir()
	id := keygen(t, home)

	der, err := run(t, "pubkey", "--home", home)
	require.NoError(t, err)
	assert.Equal(t, id, crypto.DeriveIdentifier(der))

	b64, err := run(t, "pubkey", "--home", home, "--base64")
	require.NoError(t, err)
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(b64))
	require.NoError(t, err)
	assert.Equal(t, []byte(der), decoded)

	pemOut, err := run(t, "pubkey", "--home", home, "--format", "pem")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(pemOut, "-----BEGIN PUBLIC KEY-----"))

	_, err = run(t, "pubkey", "--home", home, "--format", "xml")
	require.ErrorIs(t, err, domain.ErrInvalidFormat)
}

func TestSignVerify(t *testing.T) {
	home := t.TempDir()
	keygen(t, home)

	file := filepath.Join(t.TempDir(), "ext.zip")
	require.NoError(t, os.WriteFile(file, []byte("zip bytes"), 0o600))

	out, err := run(t, "sign", "--home", home, file)
	require.NoError(t, err)
	assert.Contains(t, out, file+".sig")

	out, err = run(t, "verify", "--home", home, file, file+".sig")
	require.NoError(t, err)
	assert.Contains(t, out, "Signature OK")

	require.NoError(t, os.WriteFile(file, []byte("zip bytez"), 0o600))
	_, err = run(t, "verify", "--home", home, file, file+".sig")
	require.ErrorIs(t, err, domain.ErrSignatureMismatch)
}

func TestIDFromKeyFiles(t *testing.T) {
	home := t.TempDir()
	id := keygen(t, home)

	keyFile := filepath.Join(home, "key.pem")
	out, err := run(t, "id", "--home", t.TempDir(), keyFile, keyFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, string(id)+"  "+keyFile, line)
	}

	// --key overrides the store.
	out, err = run(t, "id", "--home", t.TempDir(), "--key", keyFile)
	require.NoError(t, err)
	assert.Equal(t, string(id), strings.TrimSpace(out))

	_, err = run(t, "id", "--home", home, filepath.Join(home, "missing.pem"))
	require.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestIDFromPaths(t *testing.T) {
	out, err := run(t, "id", "--home", t.TempDir(), "--path", `c:\foo`, "/usr/local/ext")
	require.NoError(t, err)
	assert.Equal(t,
		"jcmdbpboelcpjmighalofidgocgojlkg  c:\\foo\nmnambkgfnkdpliddckbjgediefimmllg  /usr/local/ext\n",
		out)

	_, err = run(t, "id", "--home", t.TempDir(), "--path")
	require.Error(t, err)
}
