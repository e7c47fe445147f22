package main

import (
	"github.com/alecthomas/kong"
	"github.com/glhewett/jose/pkg/base64"
)

type encodeCmd struct {
	Input  string `arg:"" type:"path" default:"-" help:"The path to the input file."`
	Output string `arg:"" type:"path" default:"-" help:"The path to the encoded output."`

	URL bool `name:"url" help:"Use the unpadded URL-safe alphabet."`
}

func (cmd *encodeCmd) Run(_ *kong.Context) error {
	src, err := readInput(cmd.Input)
	if err != nil {
		return err
	}

	// Encode the input and terminate the text with a newline.
	s, err := base64.Encode(src, variant(cmd.URL))
	if err != nil {
		return err
	}

	return writeOutput(cmd.Output, []byte(s+"\n"))
}
