package canopy

import (
	"github.com/gabapcia/blockscope/internal/infra/blockchain"
	"github.com/gabapcia/blockscope/internal/ledger"
)

type (
	// blockHeaderResponse is the header of a block as returned by the gateway.
	blockHeaderResponse struct {
		Height          blockchain.Uint `json:"height"`
		Hash            string          `json:"hash"`
		Time            blockchain.Int  `json:"time"`
		ProposerAddress string          `json:"proposerAddress"`
		NumTxs          blockchain.Uint `json:"numTxs"`
	}

	// messageResponse is the message carried by a transaction.
	messageResponse struct {
		FromAddress string           `json:"fromAddress"`
		ToAddress   string           `json:"toAddress"`
		Amount      *blockchain.Uint `json:"amount"`
	}

	// signedTransactionResponse is the inner, signed transaction document.
	signedTransactionResponse struct {
		MessageType string          `json:"type"`
		Msg         messageResponse `json:"msg"`
		Fee         blockchain.Uint `json:"fee"`
		Time        blockchain.Int  `json:"time"`
	}

	// transactionResponse is a transaction result. Older gateways carry the
	// amount at the top level instead of inside the message.
	transactionResponse struct {
		Sender      string                    `json:"sender"`
		Recipient   string                    `json:"recipient"`
		MessageType string                    `json:"messageType"`
		Height      blockchain.Uint           `json:"height"`
		TxHash      string                    `json:"txHash"`
		Amount      *blockchain.Uint          `json:"amount"`
		Transaction signedTransactionResponse `json:"transaction"`
	}

	// blockResponse is a block with its transactions.
	blockResponse struct {
		BlockHeader  *blockHeaderResponse  `json:"blockHeader"`
		Transactions []transactionResponse `json:"transactions"`
	}

	// validatorResponse is a validator record. Gateways that do not report a
	// name expose the validator's net address instead.
	validatorResponse struct {
		Address         string          `json:"address"`
		Name            string          `json:"name"`
		NetAddress      string          `json:"netAddress"`
		StakedAmount    blockchain.Uint `json:"stakedAmount"`
		UnstakingHeight blockchain.Uint `json:"unstakingHeight"`
		MaxPausedHeight blockchain.Uint `json:"maxPausedHeight"`
		Delegate        bool            `json:"delegate"`
	}

	// accountResponse is an account balance.
	accountResponse struct {
		Address string          `json:"address"`
		Amount  blockchain.Uint `json:"amount"`
	}

	// pageResponse is a paginated listing.
	pageResponse[T any] struct {
		PageNumber int             `json:"pageNumber"`
		PerPage    int             `json:"perPage"`
		Results    []T             `json:"results"`
		TotalCount blockchain.Uint `json:"totalCount"`
	}

	// heightResponse is the chain head height.
	heightResponse struct {
		Height blockchain.Uint `json:"height"`
	}
)

func (t transactionResponse) toLedgerTransaction() ledger.Transaction {
	var amount uint64
	switch {
	case t.Transaction.Msg.Amount != nil:
		amount = t.Transaction.Msg.Amount.Uint64()
	case t.Amount != nil:
		amount = t.Amount.Uint64()
	}

	sender := t.Sender
	if sender == "" {
		sender = t.Transaction.Msg.FromAddress
	}

	recipient := t.Recipient
	if recipient == "" {
		recipient = t.Transaction.Msg.ToAddress
	}

	messageType := t.MessageType
	if messageType == "" {
		messageType = t.Transaction.MessageType
	}

	return ledger.Transaction{
		Hash:        t.TxHash,
		Height:      t.Height.Uint64(),
		Sender:      sender,
		Recipient:   recipient,
		MessageType: messageType,
		Amount:      amount,
		Fee:         t.Transaction.Fee.Uint64(),
		Time:        t.Transaction.Time.Int64(),
	}
}

func (b blockResponse) toLedgerBlock() ledger.Block {
	transactions := make([]ledger.Transaction, len(b.Transactions))
	for i, t := range b.Transactions {
		transactions[i] = t.toLedgerTransaction()
	}

	numTx := uint32(b.BlockHeader.NumTxs.Uint64())
	if numTx == 0 {
		numTx = uint32(len(transactions))
	}

	return ledger.Block{
		Height:       b.BlockHeader.Height.Uint64(),
		Hash:         b.BlockHeader.Hash,
		Time:         b.BlockHeader.Time.Int64(),
		Proposer:     b.BlockHeader.ProposerAddress,
		NumTx:        numTx,
		Transactions: transactions,
	}
}

func (v validatorResponse) toLedgerValidator() ledger.Validator {
	name := v.Name
	if name == "" {
		name = v.NetAddress
	}

	return ledger.Validator{
		Address:         v.Address,
		Name:            name,
		StakedAmount:    v.StakedAmount.Uint64(),
		UnstakingHeight: v.UnstakingHeight.Uint64(),
		MaxPausedHeight: v.MaxPausedHeight.Uint64(),
		Delegate:        v.Delegate,
	}
}

func (a accountResponse) toLedgerAccount() ledger.Account {
	return ledger.Account{
		Address: a.Address,
		Balance: a.Amount.Uint64(),
	}
}
