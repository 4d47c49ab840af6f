package constants

// SessionState represents the current state of the TUI application
type SessionState int

// RecordType distinguishes the two hour categories carried on the wire
type RecordType string

const (
	AppName           = "hourkeep"
	Version           = "v0.2.0"
	DefaultConfigPath = "~/.config/hourkeep/hourkeep.yaml"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Keyring entries for the auth-service session
	KeyringTokenUser    = "auth-token"
	KeyringEmployeeUser = "employee-id"

	// Record type literals expected by the record services
	RecordBillable    RecordType = "billable"
	RecordNonBillable RecordType = "non-billable"

	// MaxDailyHours bounds a single hours cell. Values are clamped at the
	// input boundary and never reach the model out of range.
	MaxDailyHours = 24

	// Service path prefixes
	SaveServicePrefix   = "save-service"
	SubmitServicePrefix = "submit-service"
	AuthServicePrefix   = "auth-service"

	// Placeholder identifiers used for dispatched records until real
	// identity management lands. The employee ID is overridden by the
	// stored session when the user is signed in.
	DefaultEmployeeID = "EMP-001"
	DefaultProjectID  = "PROJ-001"
	DefaultTaskID     = "TASK-001"
)

// Session States
const (
	StateGrid SessionState = iota
	StateEditHours
	StateConfirmSubmit
)
