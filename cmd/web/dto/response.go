package dto

// ErrorResponseDTO는 공통 에러 응답 형식이다.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"not_found"`
}

// MessageResponseDTO는 단순 메시지 응답 형식이다.
type MessageResponseDTO struct {
	Message string `json:"message" example:"ok"`
}

type HealthDTO struct {
	Status  string `json:"status" example:"ok"`
	Backend string `json:"backend" example:"sanity"`
	Error   string `json:"error,omitempty"`
}
