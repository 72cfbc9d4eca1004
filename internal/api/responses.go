package api

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
	Kind  string `json:"kind,omitempty" example:"invalid_state"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

type IDResponse struct {
	ID string `json:"id" example:"3f0b8f4e-7d0c-4f61-9a43-1d6e4a4c0f11"`
}
