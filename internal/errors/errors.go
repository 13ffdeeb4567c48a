package errors

import "errors"

// This package defines a centralized set of sentinel errors for the application.
// Services wrap these with `fmt.Errorf("%w: ...")` so the API layer can use
// `errors.Is()` to pick the HTTP status without knowing where the error came from.

var (
	// ErrConfiguration signifies that the relay is missing a Genie space id or
	// could not resolve Databricks credentials. It is fatal and never retried.
	// This is mapped to a 500 Internal Server Error HTTP status.
	ErrConfiguration = errors.New("configuration error")

	// ErrTransport signifies that submitting a message to Genie failed, either
	// at the network level or with a non-2xx response.
	// This is mapped to a 500 Internal Server Error HTTP status.
	ErrTransport = errors.New("genie transport error")

	// ErrValidation signifies that input data provided by a client failed
	// validation.
	// This is mapped to a 400 Bad Request HTTP status.
	ErrValidation = errors.New("validation failed")

	// ErrInternal signifies an unexpected error on the server, such as a transport
	// breaking its contract. The cause is logged, never sent to the client.
	// This is mapped to a 500 Internal Server Error HTTP status.
	ErrInternal = errors.New("internal server error")
)
