package cli

import (
	"fmt"
	"time"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}

	principal, err := ctx.requirePrincipal()
	if err != nil {
		return err
	}
	if _, err := ctx.ensureSettings(principal.ID, time.Now()); err != nil {
		return err
	}

	fmt.Printf("Initialized focusflow storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}
