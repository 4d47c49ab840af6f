package cli

import (
	"time"

	"github.com/hourkeep/hourkeep-cli/internal/authapi"
	"github.com/hourkeep/hourkeep-cli/internal/config"
	"github.com/hourkeep/hourkeep-cli/internal/constants"
	"github.com/hourkeep/hourkeep-cli/internal/keyring"
	"github.com/hourkeep/hourkeep-cli/internal/logger"
	"github.com/hourkeep/hourkeep-cli/internal/timesheet"
)

// Context carries the wired collaborators into every kong command.
type Context struct {
	Config *config.Config
	Save   timesheet.RecordStore
	Submit timesheet.RecordStore
	Auth   *authapi.Client
}

// EmployeeID resolves the employee to stamp on records: the signed-in
// session when one exists, else the configured placeholder.
func (c *Context) EmployeeID() string {
	id, err := keyring.GetEmployeeID()
	if err == nil && id != "" {
		return id
	}
	if err != nil && err != keyring.ErrNotFound {
		logger.Warn("keyring lookup failed, using configured employee ID", "error", err)
	}
	return c.Config.EmployeeID
}

// ResolveDate parses a YYYY-MM-DD flag value, defaulting to today when the
// flag is empty.
func ResolveDate(flag string) (time.Time, error) {
	if flag == "" {
		return time.Now(), nil
	}
	return time.ParseInLocation(constants.DateFormat, flag, time.Local)
}
