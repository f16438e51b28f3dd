package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	UserID   uint   `json:"userId"`
	Nickname string `json:"nickname"`
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}
