package main

import (
	"strings"

	"github.com/alecthomas/kong"
	"github.com/glhewett/jose/pkg/base64"
)

type decodeCmd struct {
	Input  string `arg:"" type:"path" default:"-" help:"The path to the base64 text."`
	Output string `arg:"" type:"path" default:"-" help:"The path to the decoded output."`

	URL bool `name:"url" help:"Expect the URL-safe alphabet."`
}

func (cmd *decodeCmd) Run(_ *kong.Context) error {
	src, err := readInput(cmd.Input)
	if err != nil {
		return err
	}

	// Trailing newlines from editors and shells are not part of the text.
	b, err := base64.Decode(strings.TrimSpace(string(src)), variant(cmd.URL))
	if err != nil {
		return err
	}

	return writeOutput(cmd.Output, b)
}
