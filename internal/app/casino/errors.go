package casino

import "errors"

var (
	ErrInvalidStake        = errors.New("invalid_stake")
	ErrInsufficientBalance = errors.New("insufficient_balance")
	ErrBetNotFound         = errors.New("bet_not_found")
)
