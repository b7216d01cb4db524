package command

// Delegated reports whether cmd will be handed to helper.
// Delegation without a configured helper is ignored.
func Delegated(cmd Command, helper string) bool {
	return cmd.Delegate && helper != "" && len(cmd.Args) > 0
}

// Delegate returns cmd with its program replaced by helper when delegation applies.
// All other tokens are kept; cmd itself is not modified.
func Delegate(cmd Command, helper string) Command {
	if !Delegated(cmd, helper) {
		return cmd
	}
	args := make([]string, len(cmd.Args))
	copy(args, cmd.Args)
	args[0] = helper
	cmd.Args = args
	return cmd
}
