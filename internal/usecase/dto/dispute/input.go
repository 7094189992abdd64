package disputedto

type OpenDisputeInput struct {
	Reference   string
	Reason      string
	Description string
	Evidence    []string
}

type ListDisputesInput struct {
	Reference *string
	Active    *bool
	Page      int
	Limit     int
}
