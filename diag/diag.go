package diag

// Diagnostic is a non-fatal condition surfaced alongside an otherwise
// well-formed result.
type Diagnostic struct {
	// Code identifies the condition programmatically, e.g. "no-candidate-keys".
	Code string
	// Message is a human-readable description.
	Message string
}

// New builds a Diagnostic with the given code and message.
func New(code, message string) Diagnostic {
	return Diagnostic{Code: code, Message: message}
}
