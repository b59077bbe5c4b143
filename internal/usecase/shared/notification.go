package shared

import "context"

// Email is one outbound message. HTMLBody is already rendered.
type Email struct {
	ToAddress string `json:"to_address"`
	ToName    string `json:"to_name"`
	Subject   string `json:"subject"`
	HTMLBody  string `json:"html_body"`
}

type Dispatcher interface {
	Dispatch(ctx context.Context, email Email) error
}
