package models

import (
	"github.com/BitLeap/BitLeap-Backend/providers/cryptocurrency"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations hooks custom rules into gin's binding validator.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("tradingpair", func(fl validator.FieldLevel) bool {
			return cryptocurrency.IsSupportedPair(fl.Field().String())
		})
	}
}

// Monetary fields come in as strings so they survive JSON without float
// rounding; handlers parse them with shopspring/decimal.
type OpenTradeRequest struct {
	Pair         string `json:"pair" binding:"required,tradingpair"`
	Direction    string `json:"direction" binding:"required,oneof=LONG SHORT"`
	Amount       string `json:"amount" binding:"required"`
	DurationSecs int32  `json:"duration_secs" binding:"required"`
	EntryPrice   string `json:"entry_price"`
}
