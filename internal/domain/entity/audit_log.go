package entity

import "time"

// Acciones registradas en la bitácora. Las de seguridad (login fallido,
// token inválido) comparten la misma tabla con Kind = security.
const (
	AuditKindAudit    = "audit"
	AuditKindSecurity = "security"

	ActionCreate      = "CREATE"
	ActionUpdate      = "UPDATE"
	ActionDelete      = "DELETE"
	ActionApprove     = "APPROVE"
	ActionReject      = "REJECT"
	ActionImport      = "IMPORT"
	ActionLoginOK     = "LOGIN_OK"
	ActionLoginFailed = "LOGIN_FAILED"
)

// AuditLog es un registro append-only de la bitácora de auditoría/seguridad.
// El actor se pasa explícitamente desde el handler; no existe un "usuario
// actual" global.
type AuditLog struct {
	ID        string
	Kind      string // audit, security
	ActorID   string // UserID; vacío en eventos anónimos (login fallido)
	Action    string
	Entity    string // sparepart, stock_in, stock_out, ...
	EntityID  string
	Detail    string
	IP        string
	CreatedAt time.Time
}
