package checkout

import "errors"

var (
	ErrIllegalTransition = errors.New("illegal checkout transition")
	ErrEmptyCart         = errors.New("cart is empty, nothing to checkout")
	ErrSubmitInProgress  = errors.New("payment is already being processed")
	ErrClosed            = errors.New("checkout closed")
)
