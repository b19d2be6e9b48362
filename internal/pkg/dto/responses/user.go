package responses

// User is the session user, the single piece of state shared between
// the two flows. Both update paths replace it as a whole.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}
