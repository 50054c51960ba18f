package models

type CreateDepositRequest struct {
	Asset   string `json:"asset" binding:"required"`
	Network string `json:"network" binding:"required"`
	Amount  string `json:"amount" binding:"required"`
}

type CreateWithdrawalRequest struct {
	Asset   string `json:"asset" binding:"required"`
	Network string `json:"network" binding:"required"`
	Address string `json:"address" binding:"required"`
	Amount  string `json:"amount" binding:"required"`
}

type DepositDecisionRequest struct {
	Action string `json:"action" binding:"required,oneof=approve reject"`
}

type WithdrawalDecisionRequest struct {
	Action string `json:"action" binding:"required,oneof=approve reject paid"`
	Note   string `json:"note"`
}
