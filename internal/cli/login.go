package cli

import (
	"context"
	"fmt"
)

// LoginCmd activates a principal. With the local provider this is
// instant; with the device-flow provider it walks the user through
// the browser authorization.
type LoginCmd struct {
	Name string `arg:"" optional:"" help:"Local profile name. Omit for guest or provider login."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	principal, err := ctx.Auth.Login(context.Background(), c.Name)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	fmt.Printf("Logged in as %s (%s)\n", principal.DisplayName, principal.ID)
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	if err := ctx.Auth.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *Context) error {
	principal, ok := ctx.Auth.Current()
	if !ok {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s (%s)\n", principal.DisplayName, principal.ID)
	return nil
}
