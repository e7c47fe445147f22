package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/glhewett/jose/pkg/base64"
)

type cli struct {
	Encode encodeCmd `cmd:"" help:"Encode a file as base64."`
	Decode decodeCmd `cmd:"" help:"Decode base64 text."`
	Header headerCmd `cmd:"" help:"Print a base64url encoded JWE protected header."`
}

func main() {
	var cli cli

	ctx := kong.Parse(&cli,
		kong.Name("b64"),
		kong.Description("RFC 4648 base64 codec for JOSE."),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func variant(url bool) base64.Variant {
	if url {
		return base64.URLSafe
	}

	return base64.Standard
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return os.Stdout, nil
	}

	return os.Create(path)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(path)
}

func writeOutput(path string, b []byte) error {
	dst, err := openOutput(path)
	if err != nil {
		return err
	}

	if _, err := dst.Write(b); err != nil {
		_ = dst.Close()
		return err
	}

	return dst.Close()
}
