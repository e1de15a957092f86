package search

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/gabapcia/blockscope/internal/ledger"
)

// ResultKind names the bucket a Result belongs to.
type ResultKind string

const (
	KindBlock       ResultKind = "block"
	KindTransaction ResultKind = "transaction"
	KindAddress     ResultKind = "address"
	KindValidator   ResultKind = "validator"
)

// Result is one entity found by a search. ID is the entity's identity key:
// the height for blocks, the hash for transactions and the lower-cased
// address for accounts and validators.
type Result struct {
	Kind     ResultKind
	ID       string
	Title    string
	Subtitle string
	Payload  any
}

// ResultSet groups results by kind. Every bucket is unique by ID.
type ResultSet struct {
	Total        uint32
	Blocks       []Result
	Transactions []Result
	Addresses    []Result
	Validators   []Result
}

// IsEmpty reports whether the set holds no results.
func (rs ResultSet) IsEmpty() bool {
	return rs.Total == 0
}

func (rs *ResultSet) bucket(kind ResultKind) *[]Result {
	switch kind {
	case KindBlock:
		return &rs.Blocks
	case KindTransaction:
		return &rs.Transactions
	case KindAddress:
		return &rs.Addresses
	case KindValidator:
		return &rs.Validators
	default:
		return nil
	}
}

// Merge returns dst with candidates appended to their buckets. A candidate
// whose ID is already in its bucket is dropped, so the first source wins.
// dst is not modified.
func Merge(dst ResultSet, candidates ...Result) ResultSet {
	out := ResultSet{
		Blocks:       slices.Clone(dst.Blocks),
		Transactions: slices.Clone(dst.Transactions),
		Addresses:    slices.Clone(dst.Addresses),
		Validators:   slices.Clone(dst.Validators),
	}

	for _, c := range candidates {
		bucket := out.bucket(c.Kind)
		if bucket == nil {
			continue
		}

		exists := slices.ContainsFunc(*bucket, func(r Result) bool { return r.ID == c.ID })
		if !exists {
			*bucket = append(*bucket, c)
		}
	}

	out.Total = uint32(len(out.Blocks) + len(out.Transactions) + len(out.Addresses) + len(out.Validators))
	return out
}

func addressID(address string) string {
	return strings.ToLower(address)
}

func shorten(s string) string {
	if len(s) <= 16 {
		return s
	}

	return s[:8] + "…" + s[len(s)-6:]
}

func blockResult(b ledger.Block) Result {
	return Result{
		Kind:     KindBlock,
		ID:       strconv.FormatUint(b.Height, 10),
		Title:    fmt.Sprintf("Block #%d", b.Height),
		Subtitle: b.Hash,
		Payload:  b,
	}
}

func transactionResult(tx ledger.Transaction) Result {
	return Result{
		Kind:     KindTransaction,
		ID:       strings.ToLower(tx.Hash),
		Title:    "Transaction " + shorten(tx.Hash),
		Subtitle: fmt.Sprintf("%s at height %d", tx.MessageType, tx.Height),
		Payload:  tx,
	}
}

func accountResult(a ledger.Account) Result {
	return Result{
		Kind:     KindAddress,
		ID:       addressID(a.Address),
		Title:    a.Address,
		Subtitle: fmt.Sprintf("Balance %d", a.Balance),
		Payload:  a,
	}
}

func validatorResult(v ledger.Validator) Result {
	title := v.Name
	if title == "" {
		title = shorten(v.Address)
	}

	return Result{
		Kind:     KindValidator,
		ID:       addressID(v.Address),
		Title:    title,
		Subtitle: v.Address,
		Payload:  v,
	}
}
