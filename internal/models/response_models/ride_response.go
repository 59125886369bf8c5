package response_models

type RideFare struct {
	ProductID      string  `json:"productId"`
	DisplayName    string  `json:"displayName"`
	CurrencyCode   string  `json:"currencyCode"`
	Estimate       string  `json:"estimate"`
	LowEstimate    float64 `json:"lowEstimate"`
	HighEstimate   float64 `json:"highEstimate"`
	DurationMinute int     `json:"durationMinutes"`
}

type RideLink struct {
	DeepLink string     `json:"deepLink"`
	WebURL   string     `json:"webUrl"`
	Fares    []RideFare `json:"fares"`
}
