package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/hourkeep/hourkeep-cli/internal/keyring"
	"github.com/hourkeep/hourkeep-cli/internal/logger"
)

// LoginCmd signs in against the auth-service and stores the session in the
// OS keyring.
type LoginCmd struct {
	Email string `help:"Account email. Prompted for when omitted."`
}

func (cmd *LoginCmd) Run(appCtx *Context) error {
	email := cmd.Email
	var password string

	var fields []huh.Field
	if email == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Value(&email).
			Validate(func(s string) error {
				if s == "" {
					return fmt.Errorf("email is required")
				}
				return nil
			}))
	}
	fields = append(fields, huh.NewInput().
		Title("Password").
		EchoMode(huh.EchoModePassword).
		Value(&password).
		Validate(func(s string) error {
			if s == "" {
				return fmt.Errorf("password is required")
			}
			return nil
		}))

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return err
	}

	session, err := appCtx.Auth.Login(context.Background(), email, password)
	if err != nil {
		return err
	}

	if err := keyring.SetToken(session.Token); err != nil {
		return err
	}
	if err := keyring.SetEmployeeID(session.User.EmployeeID); err != nil {
		return err
	}

	logger.Info("signed in", "employeeId", session.User.EmployeeID)
	fmt.Printf("Signed in as %s %s (%s)\n", session.User.FirstName, session.User.LastName, session.User.EmployeeID)
	return nil
}

// RegisterCmd creates an account on the auth-service and signs in.
type RegisterCmd struct {
	Email string `help:"Account email. Prompted for when omitted."`
}

func (cmd *RegisterCmd) Run(appCtx *Context) error {
	email := cmd.Email
	var firstName, lastName, password string

	required := func(label string) func(string) error {
		return func(s string) error {
			if s == "" {
				return fmt.Errorf("%s is required", label)
			}
			return nil
		}
	}

	fields := []huh.Field{
		huh.NewInput().Title("First name").Value(&firstName).Validate(required("first name")),
		huh.NewInput().Title("Last name").Value(&lastName).Validate(required("last name")),
	}
	if email == "" {
		fields = append(fields, huh.NewInput().Title("Email").Value(&email).Validate(required("email")))
	}
	fields = append(fields, huh.NewInput().
		Title("Password").
		EchoMode(huh.EchoModePassword).
		Value(&password).
		Validate(required("password")))

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return err
	}

	session, err := appCtx.Auth.Register(context.Background(), firstName, lastName, email, password)
	if err != nil {
		return err
	}

	if err := keyring.SetToken(session.Token); err != nil {
		return err
	}
	if err := keyring.SetEmployeeID(session.User.EmployeeID); err != nil {
		return err
	}

	logger.Info("account registered", "employeeId", session.User.EmployeeID)
	fmt.Printf("Registered and signed in as %s %s (%s)\n", session.User.FirstName, session.User.LastName, session.User.EmployeeID)
	return nil
}

// LogoutCmd clears the stored session.
type LogoutCmd struct{}

func (cmd *LogoutCmd) Run(appCtx *Context) error {
	if err := keyring.Clear(); err != nil {
		return err
	}
	fmt.Println("Signed out.")
	return nil
}
