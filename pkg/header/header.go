package header

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/glhewett/jose/pkg/base64"
	"github.com/glhewett/jose/pkg/jwa"
)

// Attribute is the name of a JOSE header parameter.
//
// https://www.rfc-editor.org/rfc/rfc7516.html#section-4.1
type Attribute = string

const (
	Algorithm   Attribute = "alg"
	Encryption  Attribute = "enc"
	Direct      Attribute = "dir"
	ContentType Attribute = "cty"
	KeyID       Attribute = "kid"

	// https://www.rfc-editor.org/rfc/rfc7518.html#section-4.6.1
	EphemeralPublicKey  Attribute = "epk"
	AgreementPartyUInfo Attribute = "apu"
	AgreementPartyVInfo Attribute = "apv"
)

var (
	ErrParameterNotFound = errors.New("header parameter not found")
	ErrUnknownAttribute  = errors.New("unknown header attribute")
	ErrRequiredAttribute = errors.New("header attribute is required")
)

// Header is a JWE protected header. "alg" and "enc" are always present;
// the remaining attributes are optional and omitted from the JSON
// form when unset. An attribute set to "" is still present.
type Header struct {
	alg string
	enc string

	dir *string
	cty *string
	kid *string
	epk *string
	apu *string
	apv *string
}

// New returns a header with only the required attributes set.
func New(alg jwa.Algorithm, enc jwa.Encryption) *Header {
	return &Header{alg: alg, enc: enc}
}

func (h *Header) Algorithm() jwa.Algorithm {
	return h.alg
}

func (h *Header) Encryption() jwa.Encryption {
	return h.enc
}

// optional returns the storage for an optional attribute, or nil if attr
// is not one.
func (h *Header) optional(attr Attribute) **string {
	switch attr {
	case Direct:
		return &h.dir
	case ContentType:
		return &h.cty
	case KeyID:
		return &h.kid
	case EphemeralPublicKey:
		return &h.epk
	case AgreementPartyUInfo:
		return &h.apu
	case AgreementPartyVInfo:
		return &h.apv
	}
	return nil
}

// Get returns the value of attr and whether it is set.
func (h *Header) Get(attr Attribute) (string, bool) {
	switch attr {
	case Algorithm:
		return h.alg, true
	case Encryption:
		return h.enc, true
	}
	if p := h.optional(attr); p != nil && *p != nil {
		return **p, true
	}
	return "", false
}

// Set assigns value to attr.
func (h *Header) Set(attr Attribute, value string) error {
	switch attr {
	case Algorithm:
		h.alg = value
		return nil
	case Encryption:
		h.enc = value
		return nil
	}
	p := h.optional(attr)
	if p == nil {
		return fmt.Errorf("%w: %q", ErrUnknownAttribute, attr)
	}
	*p = &value
	return nil
}

// Unset removes an optional attribute. The required attributes cannot be
// removed.
func (h *Header) Unset(attr Attribute) error {
	switch attr {
	case Algorithm, Encryption:
		return fmt.Errorf("%w: %q", ErrRequiredAttribute, attr)
	}
	p := h.optional(attr)
	if p == nil {
		return fmt.Errorf("%w: %q", ErrUnknownAttribute, attr)
	}
	*p = nil
	return nil
}

// wire is the JSON form of Header. Field order fixes the serialized order.
type wire struct {
	Alg *string `json:"alg"`
	Enc *string `json:"enc"`
	Dir *string `json:"dir,omitempty"`
	Cty *string `json:"cty,omitempty"`
	Kid *string `json:"kid,omitempty"`
	Epk *string `json:"epk,omitempty"`
	Apu *string `json:"apu,omitempty"`
	Apv *string `json:"apv,omitempty"`
}

func (h *Header) MarshalJSON() ([]byte, error) {
	alg, enc := h.alg, h.enc
	return json.Marshal(wire{
		Alg: &alg,
		Enc: &enc,
		Dir: h.dir,
		Cty: h.cty,
		Kid: h.kid,
		Epk: h.epk,
		Apu: h.apu,
		Apv: h.apv,
	})
}

func (h *Header) UnmarshalJSON(b []byte) error {
	var w wire
	if err := json.Unmarshal(b, &w); err != nil {
		return fmt.Errorf("failed to decode JOSE header: %w", err)
	}
	if w.Alg == nil {
		return fmt.Errorf("%w: %q", ErrParameterNotFound, Algorithm)
	}
	if w.Enc == nil {
		return fmt.Errorf("%w: %q", ErrParameterNotFound, Encryption)
	}
	*h = Header{
		alg: *w.Alg,
		enc: *w.Enc,
		dir: w.Dir,
		cty: w.Cty,
		kid: w.Kid,
		epk: w.Epk,
		apu: w.Apu,
		apv: w.Apv,
	}
	return nil
}

// Base64URLString returns the compact JSON form of h encoded as unpadded
// base64url, the protected header segment of a JWE compact serialization.
func (h *Header) Base64URLString() (string, error) {
	b, err := h.MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("failed to encode JOSE header base64 URL string: %w", err)
	}
	s, err := base64.EncodeURL(b)
	if err != nil {
		return "", fmt.Errorf("failed to encode JOSE header base64 URL string: %w", err)
	}
	return s, nil
}

// ParseBase64URL decodes a header produced by Base64URLString.
func ParseBase64URL(s string) (*Header, error) {
	b, err := base64.DecodeURL(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode JOSE header base64 URL string: %w", err)
	}
	var h Header
	if err := json.Unmarshal(b, &h); err != nil {
		return nil, err
	}
	return &h, nil
}
