package request_models

type RideLinkRequest struct {
	Pickup          *UserLocation `json:"pickup"`
	Destination     UserLocation  `json:"destination" binding:"required"`
	DestinationName string        `json:"destinationName"`
}
