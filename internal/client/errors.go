package client

import "errors"

// TransactionFailedError is returned when a submitted transaction landed
// but its execution failed on-chain
type TransactionFailedError struct {
	Signature string
	Reason    string
}

func (e *TransactionFailedError) Error() string {
	return "transaction " + e.Signature + " failed: " + e.Reason
}

// IsTransactionFailedError checks if error is TransactionFailedError
func IsTransactionFailedError(err error) bool {
	var txErr *TransactionFailedError
	return errors.As(err, &txErr)
}
