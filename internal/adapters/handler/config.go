package handler

import "net/http"

type ConfigResponse struct {
	Success  bool   `json:"success"`
	KeyID    string `json:"key_id"`
	Currency string `json:"currency"`
}

// HandleGetConfig returns the public key id. The key secret never leaves the server.
// @Summary      Public checkout configuration
// @Tags         payments
// @Produce      json
// @Success      200  {object}  ConfigResponse
// @Router       /api/payment/config [get]
func (h *CheckoutHandler) HandleGetConfig(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, ConfigResponse{
		Success:  true,
		KeyID:    h.public.KeyID,
		Currency: h.public.Currency,
	})
}
