package errors

import "fmt"

// Error codes
const (
	CodeMonitorError = "MONITOR_ERROR"
	CodeAPIError     = "API_ERROR"
	CodeValidation   = "VALIDATION_ERROR"
	CodeStore        = "STORE_ERROR"
	CodeCache        = "CACHE_ERROR"
	CodeService      = "SERVICE_ERROR"
)

type MonitorError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *MonitorError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *MonitorError) Unwrap() error {
	return e.Cause
}

type APIError struct {
	*MonitorError
}

func NewAPIError(message string, statusCode int, context map[string]any) *APIError {
	return &APIError{
		MonitorError: &MonitorError{
			Message:    message,
			Code:       CodeAPIError,
			StatusCode: statusCode,
			Context:    context,
		},
	}
}

type ValidationError struct {
	*MonitorError
	Field string
	Value interface{}
}

func NewValidationError(message, field string, value interface{}) *ValidationError {
	return &ValidationError{
		MonitorError: &MonitorError{
			Message:    message,
			Code:       CodeValidation,
			StatusCode: 400,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}

type StoreError struct {
	*MonitorError
	Table     string
	Operation string
}

func NewStoreError(message, table, operation string, cause error) *StoreError {
	return &StoreError{
		MonitorError: &MonitorError{
			Message:    message,
			Code:       CodeStore,
			StatusCode: 500,
			Context: map[string]any{
				"table":     table,
				"operation": operation,
			},
			Cause: cause,
		},
		Table:     table,
		Operation: operation,
	}
}

type CacheError struct {
	*MonitorError
	Operation string
	Key       string
}

func NewCacheError(message, operation, key string, cause error) *CacheError {
	return &CacheError{
		MonitorError: &MonitorError{
			Message:    message,
			Code:       CodeCache,
			StatusCode: 500,
			Context: map[string]any{
				"operation": operation,
				"key":       key,
			},
			Cause: cause,
		},
		Operation: operation,
		Key:       key,
	}
}

type ServiceError struct {
	*MonitorError
	Service   string
	Operation string
}

func NewServiceError(message, service, operation string, cause error) *ServiceError {
	return &ServiceError{
		MonitorError: &MonitorError{
			Message:    message,
			Code:       CodeService,
			StatusCode: 500,
			Context: map[string]any{
				"service":   service,
				"operation": operation,
			},
			Cause: cause,
		},
		Service:   service,
		Operation: operation,
	}
}
