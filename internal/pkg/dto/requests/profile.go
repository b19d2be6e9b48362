package requests

// UpdateProfile carries the edit-profile form. The password trio is
// validated only when OldPassword is filled in (struct-level rule in
// utils), and is stripped from the outgoing payload entirely when it
// is not, so the upstream never sees empty password fields.
type UpdateProfile struct {
	Name                 string `json:"name" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	OldPassword          string `json:"old_password,omitempty"`
	Password             string `json:"password,omitempty"`
	PasswordConfirmation string `json:"password_confirmation,omitempty"`
}
