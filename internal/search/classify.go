package search

import (
	"strings"

	"github.com/gabapcia/blockscope/internal/pkg/types"
)

const (
	addressLength          = 40
	minPartialAddressChars = 8
	minHashChars           = 32
)

// QueryKind is what a raw query was classified as.
type QueryKind int

const (
	Unrecognized QueryKind = iota
	Height
	FullAddress
	PartialAddress
	Hash
)

func (k QueryKind) String() string {
	switch k {
	case Height:
		return "height"
	case FullAddress:
		return "full_address"
	case PartialAddress:
		return "partial_address"
	case Hash:
		return "hash"
	default:
		return "unrecognized"
	}
}

// Query is a classified search input.
type Query struct {
	Raw  string
	Kind QueryKind
}

// NewQuery trims raw and classifies it.
func NewQuery(raw string) Query {
	raw = strings.TrimSpace(raw)
	return Query{Raw: raw, Kind: Classify(raw)}
}

// Classify returns the kind of s. The first matching rule wins:
//
//  1. Height: only decimal digits.
//  2. FullAddress: exactly 40 hex characters.
//  3. PartialAddress: 8 to 39 hex characters.
//  4. Hash: at least 32 hex characters not claimed above.
//  5. Unrecognized: anything else.
//
// A 32 to 39 character hex string is a partial address, not a hash.
func Classify(s string) QueryKind {
	switch {
	case types.IsDecimal(s):
		return Height
	case !types.IsHex(s):
		return Unrecognized
	case len(s) == addressLength:
		return FullAddress
	case len(s) >= minPartialAddressChars && len(s) < addressLength:
		return PartialAddress
	case len(s) >= minHashChars:
		return Hash
	default:
		return Unrecognized
	}
}
