package health

import (
	"encoding/json"
	"net/http"
)

type HealthResponse struct {
	Status  string `json:"status" example:"online"`
	Message string `json:"message" example:"API is working correctly"`
}

// HealthHandler godoc
//
//	@Summary		Health check endpoint
//	@Description	Check if the API is running and healthy
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	HealthResponse	"API is healthy"
//	@Router			/health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	json.NewEncoder(w).Encode(HealthResponse{
		Status:  "online",
		Message: "API is working correctly",
	})
}
