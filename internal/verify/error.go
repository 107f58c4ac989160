package verify

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindServerMisconfiguration   Kind = "SERVER_MISCONFIGURATION"
	KindMissingReference         Kind = "MISSING_REFERENCE"
	KindGatewayHTTPError         Kind = "GATEWAY_HTTP_ERROR"
	KindTransactionNotFound      Kind = "TRANSACTION_NOT_FOUND"
	KindTransactionNotSuccessful Kind = "TRANSACTION_NOT_SUCCESSFUL"
	KindUnhandledException       Kind = "UNHANDLED_EXCEPTION"
)

// Error is a terminal verification failure. Status is the HTTP status the
// caller should see.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Each failure is built fresh so callers cannot alter what later requests see.

func errServerMisconfiguration() *Error {
	return &Error{
		Kind:    KindServerMisconfiguration,
		Status:  http.StatusInternalServerError,
		Message: "Server Misconfiguration: Missing Keys",
	}
}

func errMissingReference() *Error {
	return &Error{
		Kind:    KindMissingReference,
		Status:  http.StatusBadRequest,
		Message: "Missing Reference ID",
	}
}

func errTransactionNotFound(cause error) *Error {
	return &Error{
		Kind:    KindTransactionNotFound,
		Status:  http.StatusNotFound,
		Message: "Transaction not found",
		Err:     cause,
	}
}

func errTransactionNotSuccessful() *Error {
	return &Error{
		Kind:    KindTransactionNotSuccessful,
		Status:  http.StatusBadRequest,
		Message: "Transaction was not successful",
	}
}

func gatewayHTTPError(status int, cause error) *Error {
	return &Error{
		Kind:    KindGatewayHTTPError,
		Status:  status,
		Message: fmt.Sprintf("Bank Error: %d", status),
		Err:     cause,
	}
}

func unhandled(cause error) *Error {
	return &Error{
		Kind:    KindUnhandledException,
		Status:  http.StatusInternalServerError,
		Message: cause.Error(),
		Err:     cause,
	}
}

// AsError converts any error into an *Error. Errors that are not already
// classified become KindUnhandledException.
func AsError(err error) *Error {
	var verr *Error
	if errors.As(err, &verr) {
		return verr
	}
	return unhandled(err)
}
