package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kragchat/ragctl/internal/config"
)

// modeValue is a pflag.Value that writes a fixed mode into a shared target.
// Registering one per mode gives --dev/--prod last-specified-wins semantics,
// since pflag applies flag values in argument order.
type modeValue struct {
	mode   config.Mode
	target *config.Mode
}

var _ pflag.Value = (*modeValue)(nil)

func (v *modeValue) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("invalid boolean value %q", s)
	}
	if on {
		*v.target = v.mode
	}
	return nil
}

func (v *modeValue) String() string {
	return strconv.FormatBool(v.target != nil && *v.target == v.mode)
}

func (v *modeValue) Type() string { return "bool" }

// registerModeFlags adds the mutually exclusive --dev/--prod selectors to cmd.
func registerModeFlags(cmd *cobra.Command, opts *Options) {
	dev := cmd.Flags().VarPF(&modeValue{mode: config.ModeDevelopment, target: &opts.Mode}, "dev", "d", "Start the stack in development mode")
	dev.NoOptDefVal = "true"
	prod := cmd.Flags().VarPF(&modeValue{mode: config.ModeProduction, target: &opts.Mode}, "prod", "p", "Start the stack in production mode (default)")
	prod.NoOptDefVal = "true"
}
