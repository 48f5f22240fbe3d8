package dto

type VerifyCardRequestDTO struct {
	CardNumber string `json:"cardNumber" example:"4111111111111234"`
}

type VerifyPinRequestDTO struct {
	Pin string `json:"pin" example:"1234"`
}

type MessageResponseDTO struct {
	Message string `json:"message" example:"Card verified"`
}
