package cli

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
)

// parseArgs enforces a subcommand's positional-argument schema: one value
// per required name in order, then values for any optional trailing
// arguments or their defaults. Anything beyond the schema is rejected.
func parseArgs(c *cli.Context, required []string, optionalDefaults []string) ([]string, error) {
	args := c.Args()
	if max := len(required) + len(optionalDefaults); args.Len() > max {
		return nil, usageErrorf("too many arguments: expected at most %d, got %d", max, args.Len())
	}
	parsed := make([]string, 0, len(required)+len(optionalDefaults))
	for i, name := range required {
		// Presence, not non-emptiness: an explicit empty string is a
		// provided value.
		if i >= args.Len() {
			return nil, usageErrorf("missing required argument <%s>", name)
		}
		parsed = append(parsed, args.Get(i))
	}
	for i, def := range optionalDefaults {
		if idx := len(required) + i; idx < args.Len() {
			parsed = append(parsed, args.Get(idx))
		} else {
			parsed = append(parsed, def)
		}
	}
	return parsed, nil
}

// usageFailure prints the subcommand's usage text and returns err.
func usageFailure(c *cli.Context, err error) error {
	return multierr.Combine(err, cli.ShowSubcommandHelp(c))
}
