package requests

type CreateAppointment struct {
	ProviderID string `json:"provider_id"`
	Date       string `json:"date"`
}
