package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/glhewett/jose/pkg/header"
	"github.com/glhewett/jose/pkg/jwa"
)

type headerCmd struct {
	Alg string `required:"" help:"The key management algorithm."`
	Enc string `required:"" help:"The content encryption algorithm."`

	Dir string `help:"The dir attribute."`
	Cty string `help:"The content type."`
	Kid string `help:"The key ID."`
	Epk string `help:"The ephemeral public key."`
	Apu string `help:"The agreement PartyUInfo."`
	Apv string `help:"The agreement PartyVInfo."`
}

func (cmd *headerCmd) Run(_ *kong.Context) error {
	if !jwa.KeyManagement(cmd.Alg) {
		return fmt.Errorf("unsupported key management algorithm %q", cmd.Alg)
	}

	if !jwa.ValidEncryption(cmd.Enc) {
		return fmt.Errorf("unsupported content encryption algorithm %q", cmd.Enc)
	}

	h, err := cmd.build()
	if err != nil {
		return err
	}

	s, err := h.Base64URLString()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(os.Stdout, s)

	return err
}

func (cmd *headerCmd) build() (*header.Header, error) {
	h := header.New(cmd.Alg, cmd.Enc)

	optional := []struct {
		attr  header.Attribute
		value string
	}{
		{header.Direct, cmd.Dir},
		{header.ContentType, cmd.Cty},
		{header.KeyID, cmd.Kid},
		{header.EphemeralPublicKey, cmd.Epk},
		{header.AgreementPartyUInfo, cmd.Apu},
		{header.AgreementPartyVInfo, cmd.Apv},
	}

	for _, o := range optional {
		if o.value == "" {
			continue
		}

		if err := h.Set(o.attr, o.value); err != nil {
			return nil, err
		}
	}

	return h, nil
}
