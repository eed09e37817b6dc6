package service

// Status classifies the outcome of a mutating catalog operation.
type Status string

const (
	StatusOK                   Status = "ok"
	StatusInvalidIdentity      Status = "invalid_identity"
	StatusNotFound             Status = "not_found"
	StatusReferentialViolation Status = "referential_violation"
	StatusValidation           Status = "validation_error"
	StatusPersistence          Status = "persistence_error"
)

// Result is the structured outcome of a mutating operation: a success flag, a
// human-readable message, a status classification, and on success the affected
// entity. Write paths never surface a raw storage fault to the caller.
type Result[T any] struct {
	Success bool    `json:"success"`
	Status  Status  `json:"status"`
	Message string  `json:"message"`
	Data    *T      `json:"data,omitempty"`
}

func ok[T any](data *T, message string) Result[T] {
	return Result[T]{Success: true, Status: StatusOK, Message: message, Data: data}
}

func fail[T any](status Status, message string) Result[T] {
	return Result[T]{Success: false, Status: status, Message: message}
}
