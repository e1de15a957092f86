package search

import (
	"testing"

	"github.com/gabapcia/blockscope/internal/ledger"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	var (
		validator = validatorResult(ledger.Validator{Address: "AAAA", Name: "node"})
		account   = accountResult(ledger.Account{Address: "aaaa", Balance: 10})
		block     = blockResult(ledger.Block{Height: 7, Hash: "h"})
	)

	t.Run("places candidates in their buckets", func(t *testing.T) {
		rs := Merge(ResultSet{}, validator, account, block)

		assert.Equal(t, []Result{validator}, rs.Validators)
		assert.Equal(t, []Result{account}, rs.Addresses)
		assert.Equal(t, []Result{block}, rs.Blocks)
		assert.Empty(t, rs.Transactions)
		assert.Equal(t, uint32(3), rs.Total)
	})

	t.Run("first source wins", func(t *testing.T) {
		later := validatorResult(ledger.Validator{Address: "aaaa", Name: "other"})

		rs := Merge(ResultSet{}, validator, later)

		assert.Equal(t, []Result{validator}, rs.Validators)
	})

	t.Run("merging twice equals merging once", func(t *testing.T) {
		first := []Result{validator, account}
		second := []Result{account, block, validator}

		once := Merge(Merge(ResultSet{}, first...), second...)
		twice := Merge(Merge(once, first...), second...)

		assert.Equal(t, once, twice)
	})

	t.Run("does not modify the destination", func(t *testing.T) {
		dst := ResultSet{Blocks: make([]Result, 0, 4)}

		_ = Merge(dst, block)

		assert.Empty(t, dst.Blocks)
		assert.Zero(t, dst.Total)
	})

	t.Run("ignores unknown kinds", func(t *testing.T) {
		rs := Merge(ResultSet{}, Result{Kind: "unknown", ID: "x"})

		assert.True(t, rs.IsEmpty())
	})
}

func TestResultBuilders(t *testing.T) {
	t.Run("validator falls back to short address", func(t *testing.T) {
		r := validatorResult(ledger.Validator{Address: "0123456789abcdef0123456789abcdef01234567"})

		assert.Equal(t, "01234567…234567", r.Title)
		assert.Equal(t, "0123456789abcdef0123456789abcdef01234567", r.ID)
	})

	t.Run("block identity is the height", func(t *testing.T) {
		assert.Equal(t, "42", blockResult(ledger.Block{Height: 42}).ID)
	})

	t.Run("transaction identity is the lower cased hash", func(t *testing.T) {
		r := transactionResult(ledger.Transaction{Hash: "ABCDEF", Height: 3, MessageType: "send"})

		assert.Equal(t, "abcdef", r.ID)
		assert.Equal(t, "send at height 3", r.Subtitle)
	})
}
