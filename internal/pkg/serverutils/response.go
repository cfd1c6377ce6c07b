package serverutils

import "github.com/DrInfinite/TK-WS-NoteTakingApp/internal/dto"

func MessageResponse(message string) dto.MessageResponse {
	return dto.MessageResponse{Message: message}
}

func ErrorResponse(message string) dto.ErrorResponse {
	return dto.ErrorResponse{Error: message}
}
