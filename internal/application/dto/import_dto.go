package dto

// ImportRowError error por fila en una importación Excel.
type ImportRowError struct {
	Row     int    `json:"row"` // número de fila en la hoja (1-based)
	Message string `json:"message"`
}

// ImportResult resumen de una importación masiva de repuestos.
type ImportResult struct {
	Created int              `json:"created"`
	Updated int              `json:"updated"`
	Failed  int              `json:"failed"`
	Errors  []ImportRowError `json:"errors,omitempty"`
}
