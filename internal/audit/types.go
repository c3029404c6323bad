package audit

import "time"

// Record is one dispatched request. Records are values and never mutated after Append.
type Record struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	TenantID  string    `json:"tenant_id"`
	Operation string    `json:"operation"`
	Message   string    `json:"message"`
	Success   bool      `json:"success"`
	FromCache bool      `json:"from_cache"`
	ErrorKind string    `json:"error_kind,omitempty"`
}

// Error kinds recorded on failed requests.
const (
	KindValidation       = "validation"
	KindTenantMismatch   = "tenant_mismatch"
	KindOperationFailure = "operation_failure"
	KindUnknownOperation = "unknown_operation"
	KindDelegateUnknown  = "delegate_unknown_operation"
	KindDelegateFailure  = "delegate_failure"
)
