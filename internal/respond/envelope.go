package respond

// ErrorEnvelope is the body of every error response.
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
	Meta  Meta      `json:"meta"`
}

// Meta holds cross-cutting metadata.
type Meta struct {
	TraceID *string `json:"traceId,omitempty"`
}

// ErrorBody describes an error in a predictable structured format.
type ErrorBody struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []FieldIssue `json:"details,omitempty"`
}

// FieldIssue gives field-level or contextual error information.
type FieldIssue struct {
	Field string `json:"field,omitempty"`
	Issue string `json:"issue"`
}

func newErrorEnvelope(traceID *string, code, msg string, details []FieldIssue) ErrorEnvelope {
	return ErrorEnvelope{
		Error: ErrorBody{Code: code, Message: msg, Details: append([]FieldIssue(nil), details...)},
		Meta:  Meta{TraceID: traceID},
	}
}
