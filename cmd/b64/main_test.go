package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/glhewett/jose/pkg/header"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) error {
	t.Helper()

	var cli cli

	parser, err := kong.New(&cli)
	require.NoError(t, err)

	ctx, err := parser.Parse(args)
	require.NoError(t, err)

	return ctx.Run()
}

func TestEncodeDecodeFiles(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "plain")
	encoded := filepath.Join(dir, "encoded")
	decoded := filepath.Join(dir, "decoded")

	require.NoError(t, os.WriteFile(plain, []byte("hello\xfethere"), 0o600))

	tests := []struct {
		name string
		url  []string
		want string
	}{
		{name: "standard", want: "aGVsbG/+dGhlcmU=\n"},
		{name: "url", url: []string{"--url"}, want: "aGVsbG_-dGhlcmU\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.NoError(t, run(t, append([]string{"encode", plain, encoded}, test.url...)...))

			b, err := os.ReadFile(encoded)
			require.NoError(t, err)
			require.Equal(t, test.want, string(b))

			require.NoError(t, run(t, append([]string{"decode", encoded, decoded}, test.url...)...))

			b, err = os.ReadFile(decoded)
			require.NoError(t, err)
			require.Equal(t, "hello\xfethere", string(b))
		})
	}
}

func TestDecodeWrongVariant(t *testing.T) {
	dir := t.TempDir()
	encoded := filepath.Join(dir, "encoded")
	require.NoError(t, os.WriteFile(encoded, []byte("aGVsbG_-dGhlcmU\n"), 0o600))

	err := run(t, "decode", encoded, filepath.Join(dir, "out"))
	require.Error(t, err)
}

func TestEncodeEmptyFile(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))

	err := run(t, "encode", empty, filepath.Join(dir, "out"))
	require.Error(t, err)
}

func TestHeaderBuild(t *testing.T) {
	cmd := headerCmd{Alg: "ECDH-ES", Enc: "A256GCM", Kid: "key-1", Apu: "QWxpY2U"}

	h, err := cmd.build()
	require.NoError(t, err)

	kid, ok := h.Get(header.KeyID)
	require.True(t, ok)
	require.Equal(t, "key-1", kid)

	_, ok = h.Get(header.ContentType)
	require.False(t, ok)

	s, err := h.Base64URLString()
	require.NoError(t, err)
	require.NotContains(t, s, "=")
}

func TestHeaderRejectsUnknownAlgorithms(t *testing.T) {
	require.Error(t, run(t, "header", "--alg", "HS256", "--enc", "A256GCM"))
	require.Error(t, run(t, "header", "--alg", "RSA-OAEP", "--enc", "A1GCM"))
}
