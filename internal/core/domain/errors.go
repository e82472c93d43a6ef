package domain

import "errors"

// ErrAmountAbsent is returned by Amount.Decimal when no amount was supplied.
var ErrAmountAbsent = errors.New("amount absent")

// ErrAmountOutOfRange is returned for amounts too long or with an exponent
// outside the accepted range.
var ErrAmountOutOfRange = errors.New("amount out of range")
