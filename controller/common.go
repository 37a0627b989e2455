package controller

import "backend/model"

// Ok wraps data in the common success envelope.
func Ok(data any, message string) model.Response {
	return model.Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// Fail wraps an error string in the common envelope.
func Fail(err string) model.Response {
	return model.Response{
		Success: false,
		Error:   err,
	}
}
