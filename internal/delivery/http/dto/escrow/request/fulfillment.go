package request

import "time"

type DeliveryPayload struct {
	Method         string     `json:"method" binding:"required"`
	TrackingNumber string     `json:"tracking_number"`
	Carrier        string     `json:"carrier"`
	EstimatedDate  *time.Time `json:"estimated_date"`
}

type AdvanceFulfillmentRequest struct {
	TargetStatus string           `json:"target_status" binding:"required"`
	Delivery     *DeliveryPayload `json:"delivery"`
}

type ConfirmDeliveryRequest struct {
	DeliveredAt *time.Time `json:"delivered_at"`
}
