package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldClientIP    = "client_ip"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldStatusCode  = "status_code"
	FieldDuration    = "duration_ms"
	FieldError       = "error"
	FieldAmountCents = "amount_cents"
	FieldRecordID    = "id"
	FieldCount       = "count"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentStorage = "storage"
	ComponentAdvisor = "advisor"
	ComponentEvents  = "events"
	ComponentWorker  = "worker"
	ComponentExport  = "export"
)
