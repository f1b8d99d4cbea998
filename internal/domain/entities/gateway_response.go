package entities

// GatewayResponse is the normalized answer of one gateway exchange.
//
// Err is set only when the exchange itself failed (network, protocol, SDK error).
// In that case Success is false and Message carries Err's text.

type GatewayResponse struct {
	Success       bool   `json:"success"`
	Status        string `json:"status"`
	Message       string `json:"message"`
	TransactionID string `json:"transaction_id"`
	AVS           string `json:"avs"`
	CVV2          string `json:"cvv2"`
	MaskedAccount string `json:"masked_account"`
	CardType      string `json:"card_type"`
	AuthCode      string `json:"auth_code"`
	Err           error  `json:"-"`
}

// FailedGatewayResponse converts a transport failure into a response.
func FailedGatewayResponse(err error) GatewayResponse {
	return GatewayResponse{Success: false, Message: err.Error(), Err: err}
}
