package contracts

// Navigator is the screen-stack collaborator.
type Navigator interface {
	Navigate(screen string, params map[string]interface{})
	GoBack()
}
