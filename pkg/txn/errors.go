package txn

import "errors"

var (
	// ErrEmptyTxn represents envelope without transaction.
	ErrEmptyTxn = errors.New("transaction envelope is empty")
	// ErrMultipleTxn represents envelope with more than one transaction.
	ErrMultipleTxn = errors.New("transaction envelope has multiple transactions")
)
