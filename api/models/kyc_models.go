package models

import (
	"time"

	db "github.com/BitLeap/BitLeap-Backend/db/sqlc"
)

type SubmitKYCRequest struct {
	DocumentType   string `json:"document_type" binding:"required"`
	DocumentNumber string `json:"document_number" binding:"required"`
}

type KYCDecisionRequest struct {
	UserID  int64  `json:"user_id" binding:"required"`
	Approve *bool  `json:"approve" binding:"required"`
	Note    string `json:"note"`
}

type KYCResponse struct {
	UserID         int64     `json:"user_id"`
	Status         string    `json:"status"`
	DocumentType   string    `json:"document_type,omitempty"`
	DocumentNumber string    `json:"document_number,omitempty"`
	Note           string    `json:"note,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ToKYCResponse(k *db.KYC) KYCResponse {
	return KYCResponse{
		UserID:         k.UserID,
		Status:         string(k.Status),
		DocumentType:   k.DocumentType.String,
		DocumentNumber: k.DocumentNumber.String,
		Note:           k.Note.String,
		UpdatedAt:      k.UpdatedAt,
	}
}
