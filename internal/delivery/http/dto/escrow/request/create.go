package request

type ClientPayload struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

type CreateTransactionRequest struct {
	Amount     float64       `json:"amount" binding:"required"`
	Currency   string        `json:"currency" binding:"required"`
	Client     ClientPayload `json:"client" binding:"required"`
	Guarantees []string      `json:"guarantees"`
}
