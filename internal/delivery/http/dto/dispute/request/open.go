package request

type OpenDisputeRequest struct {
	Reason      string   `json:"reason" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Evidence    []string `json:"evidence"`
}

type ResolveDisputeRequest struct {
	Outcome string `json:"outcome" binding:"required"`
}
