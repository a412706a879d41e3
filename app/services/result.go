package services

// Result is the uniform outcome shape every write operation reports back
// to its caller. Validation failures carry a field-keyed error map;
// everything else is a single displayable message.
type Result struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func ok(message string) Result {
	return Result{Success: true, Message: message}
}

func fail(message string) Result {
	return Result{Success: false, Message: message}
}

func failFields(message string, errs map[string]string) Result {
	return Result{Success: false, Message: message, Errors: errs}
}
