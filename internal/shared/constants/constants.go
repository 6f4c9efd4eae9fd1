package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType = "Content-Type"
	HeaderCompanySID  = "X-Company-ID"
	HeaderXRequestID  = "X-Request-ID"

	// Content Types
	ContentTypeJSON = "application/json"

	// Context keys
	ContextKeyCompanyID  = "company_id"
	ContextKeyCompanySID = "company_sid"
	ContextKeyRequestID  = "request_id"

	// Database table names
	TableCompanies             = "companies"
	TableWorkOrders            = "work_orders"
	TableWorkOrderSequences    = "work_order_sequences"
	TableSubscriptionHistories = "subscription_histories"
	TableContactMessages       = "contact_messages"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgConflict            = "Resource already exists"
)
