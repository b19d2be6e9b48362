package responses

type Appointment struct {
	ID         string `json:"id"`
	ProviderID string `json:"provider_id"`
	Date       string `json:"date"`
}
