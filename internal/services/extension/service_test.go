package extension_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crxkit/internal/crypto"
	"crxkit/internal/domain"
	"crxkit/internal/services/extension"
	"crxkit/internal/store"
)

func newService(t *testing.T) (*extension.Service, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	return extension.New(store.NewKeyFileStore(t.TempDir()), log), &buf
}

func TestService_CreateAndLoadKey(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, logs := newService(t)

	created, err := svc.CreateKey(ctx, "s3cret", false)
	require.NoError(t, err)
	assert.Len(t, created.ExtensionID, crypto.IdentifierLength)
	assert.Equal(t, crypto.DeriveIdentifier(created.PublicKey), created.ExtensionID)
	assert.Contains(t, logs.String(), "private key stored")
	assert.NotContains(t, logs.String(), "PRIVATE KEY-----")

	loaded, err := svc.LoadKey(ctx, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, created, loaded)

	_, err = svc.CreateKey(ctx, "s3cret", false)
	require.ErrorIs(t, err, domain.ErrKeyExists)
}

func TestService_SignVerify(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newService(t)

	info, err := svc.CreateKey(ctx, "", false)
	require.NoError(t, err)

	content := []byte("zip archive bytes")
	sig, err := svc.Sign(info.PrivateKey, content)
	require.NoError(t, err)

	require.NoError(t, svc.Verify(ctx, info.PrivateKey, content, sig))
	require.ErrorIs(t, svc.Verify(ctx, info.PrivateKey, []byte("tampered"), sig), domain.ErrSignatureMismatch)
}

func TestService_PublicKeyFormats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newService(t)

	info, err := svc.CreateKey(ctx, "", false)
	require.NoError(t, err)

	der, err := svc.PublicKey(ctx, info.PrivateKey, domain.FormatDER)
	require.NoError(t, err)
	assert.Equal(t, info.PublicKey, der)

	_, err = svc.PublicKey(ctx, info.PrivateKey, "xml")
	require.ErrorIs(t, err, domain.ErrInvalidFormat)
}

func TestService_DescribeKeyRejectsGarbage(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)

	_, err := svc.DescribeKey(context.Background(), "garbage")
	require.ErrorIs(t, err, domain.ErrInvalidKey)

	_, err = svc.DescribeKey(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrMissingKey)
}

func TestService_LoadKeyMissing(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)

	_, err := svc.LoadKey(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestService_IdentifierForPath(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)

	assert.Equal(t, domain.Identifier("jcmdbpboelcpjmighalofidgocgojlkg"), svc.IdentifierForPath(`c:\foo`))
	assert.Equal(t, crypto.DeriveIdentifier("/usr/local/ext"), svc.IdentifierForPath("/usr/local/ext"))
}
