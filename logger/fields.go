package logger

// Standard field names for structured logging.
const (
	FieldComponent = "component"
	FieldSession   = "session"
	FieldPath      = "path"
	FieldPersons   = "persons"
	FieldRoots     = "roots"
	FieldEdges     = "edges"
	FieldRootID    = "root_id"
	FieldRootWBS   = "root_wbs"
	FieldCount     = "count"
	FieldAddress   = "address"
	FieldError     = "error"
)
