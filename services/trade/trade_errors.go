package trade

import "fmt"

var (
	ErrInvalidStake      = fmt.Errorf("stake must be greater than zero")
	ErrInvalidDuration   = fmt.Errorf("duration must be greater than zero")
	ErrInvalidDirection  = fmt.Errorf("direction must be LONG or SHORT")
	ErrInvalidEntryPrice = fmt.Errorf("entry price must be greater than zero")
	ErrTradeNotFound     = fmt.Errorf("trade not found")
	ErrNotYourTrade      = fmt.Errorf("you don't own this trade, this will be reported")
	ErrInvalidTradeState = fmt.Errorf("trade is in an invalid state")
)
