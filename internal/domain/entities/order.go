package entities

type OrderStatus string

const (
	OrderStatusInProgress OrderStatus = "In Progress"
	OrderStatusDelivered  OrderStatus = "Delivered"
)

// FinalTrackingStage is the last index of the fulfillment pipeline. Reaching
// it delivers the order and triggers invoicing.
const FinalTrackingStage = 7

// TrackingStage describes one step of the fulfillment pipeline.
type TrackingStage struct {
	Title       string `json:"title"`
	SubTitle    string `json:"sub_title"`
	Description string `json:"description"`
}

var OrderStages = [FinalTrackingStage + 1]TrackingStage{
	{Title: "Verification", SubTitle: "ORDER CHECK", Description: "We are verifying your order details and payment method."},
	{Title: "Processing", SubTitle: "SYSTEM ENTRY", Description: "Order has been entered into our system and is being processed."},
	{Title: "Inventory", SubTitle: "STOCK CHECK", Description: "Checking stock availability for your requested items."},
	{Title: "Agent Assign", SubTitle: "STAFFING", Description: "A dedicated fulfillment agent has been assigned to your order."},
	{Title: "Procurement", SubTitle: "PURCHASING", Description: "Items are being picked or procured from suppliers."},
	{Title: "Setup", SubTitle: "CONFIGURATION", Description: "Hardware is being configured and software pre-loaded."},
	{Title: "Done", SubTitle: "QUALITY CHECK", Description: "Final quality checks completed. Ready for activation."},
	{Title: "Activated", SubTitle: "SERVICE LIVE", Description: "Your service is live and fully operational!"},
}

// StageInfo returns the pipeline step for stage, or false when out of range.
func StageInfo(stage int) (TrackingStage, bool) {
	if stage < 0 || stage > FinalTrackingStage {
		return TrackingStage{}, false
	}
	return OrderStages[stage], true
}

// Order is an approved quote moving through the fulfillment pipeline.
//
// TrackingStage never decreases and only advances while the order is
// In Progress. Status is Delivered iff TrackingStage == FinalTrackingStage.
type Order struct {
	ID                  string      `json:"id"`
	Date                string      `json:"date"`
	Item                string      `json:"item"`
	Amount              float64     `json:"amount"`
	Status              OrderStatus `json:"status"`
	TrackingStage       int         `json:"tracking_stage"`
	EstimatedCompletion string      `json:"estimated_completion"`
}

func (o Order) IsComplete() bool {
	return o.TrackingStage >= FinalTrackingStage
}
