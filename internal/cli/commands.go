package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pong/internal/model"
)

type runFunc func(model.Intent) error

func newInstallCommand(run runFunc) *cobra.Command {
	var in model.Install
	cmd := &cobra.Command{
		Use:     "install [PACKAGE...]",
		Aliases: []string{"i"},
		Short:   "Install packages",
		Long:    "Install the specified packages and all of their required dependencies.",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Packages = args
			return run(in)
		},
	}
	f := cmd.Flags()
	f.BoolVarP(&in.Reinstall, "reinstall", "r", false, "Reinstall packages that are already installed")
	f.BoolVarP(&in.Download, "download", "d", false, "Retrieve packages, but do not install them")
	f.BoolVarP(&in.AUR, "aur", "u", false, "Install from the AUR in addition to official sources")
	cmd.MarkFlagsMutuallyExclusive("reinstall", "download")
	return cmd
}

func newRemoveCommand(run runFunc) *cobra.Command {
	var in model.Remove
	cmd := &cobra.Command{
		Use:     "remove [PACKAGE...]",
		Aliases: []string{"r"},
		Short:   "Remove packages",
		Long:    "Remove all specified packages and recursively remove any orphaned dependencies.",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Packages = args
			return run(in)
		},
	}
	f := cmd.Flags()
	f.BoolVarP(&in.Cascade, "cascade", "c", false, "Remove all packages that depend on the packages as well")
	f.BoolVarP(&in.KeepOrphans, "keep-orphans", "k", false, "Keep orphaned dependencies")
	f.BoolVarP(&in.Explicit, "explicit", "e", false, "Remove orphaned dependencies even if they are marked as explicitly installed")
	f.BoolVarP(&in.Save, "save", "s", false, "Save configuration files")
	f.BoolVar(&in.NoAUR, "no-aur", false, "Do not perform AUR-specific operations when removing AUR packages")
	cmd.MarkFlagsMutuallyExclusive("explicit", "keep-orphans")
	return cmd
}

// newUpgradeCommand leaves --refresh/--no-refresh to the generator, which rejects the pair.
func newUpgradeCommand(run runFunc) *cobra.Command {
	var in model.Upgrade
	cmd := &cobra.Command{
		Use:     "upgrade",
		Aliases: []string{"u"},
		Short:   "Refresh the sync database and upgrade packages",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(in)
		},
	}
	f := cmd.Flags()
	f.BoolVarP(&in.NoRefresh, "no-refresh", "n", false, "Only upgrade packages, do not refresh the sync database")
	f.BoolVarP(&in.Refresh, "refresh", "r", false, "Only refresh the sync database, do not perform upgrades")
	f.BoolVarP(&in.Download, "download", "d", false, "Retrieve packages, but do not perform upgrades")
	f.BoolVar(&in.NoAUR, "no-aur", false, "Do not upgrade AUR packages")
	return cmd
}

func newCleanCommand(run runFunc) *cobra.Command {
	var in model.Clean
	cmd := &cobra.Command{
		Use:     "clean",
		Aliases: []string{"c"},
		Short:   "Clean the package caches",
		Long: `Clean the package caches.

Remove packages that are no longer installed from the cache
as well as unused sync databases.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(in)
		},
	}
	f := cmd.Flags()
	f.BoolVarP(&in.All, "all", "a", false, "Also remove installed packages from the cache")
	f.BoolVar(&in.NoAUR, "no-aur", false, "Do not perform AUR-specific cleaning")
	return cmd
}

func newSearchCommand(run runFunc) *cobra.Command {
	var in model.Search
	cmd := &cobra.Command{
		Use:     "search [REGEX...]",
		Aliases: []string{"s"},
		Short:   "Search for a package",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Queries = args
			return run(in)
		},
	}
	f := cmd.Flags()
	f.BoolVarP(&in.Installed, "installed", "i", false, "Search in installed packages")
	f.BoolVarP(&in.AUR, "aur", "u", false, "Search the AUR along with official repositories")
	return cmd
}

func newListCommand(run runFunc) *cobra.Command {
	var in model.List
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"l"},
		Short:   "List installed packages",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(in)
		},
	}
	f := cmd.Flags()
	f.BoolVarP(&in.Explicit, "explicit", "e", false, "Only list packages installed explicitly")
	f.BoolVarP(&in.Deps, "deps", "d", false, "Only list packages installed as dependencies")
	f.BoolVarP(&in.Free, "free", "f", false, "Only list packages not required by any installed packages")
	f.BoolVarP(&in.Sync, "sync", "s", false, "Only list packages found in the sync database(s)")
	f.BoolVarP(&in.NoSync, "no-sync", "n", false, "Only list packages not found in the sync database(s)")
	f.BoolVarP(&in.Upgrades, "upgrades", "u", false, "Only list packages that are out of date")
	cmd.MarkFlagsMutuallyExclusive("explicit", "deps")
	cmd.MarkFlagsMutuallyExclusive("sync", "no-sync")
	return cmd
}

func newWhichCommand(run runFunc) *cobra.Command {
	var in model.Which
	cmd := &cobra.Command{
		Use:     "which [FILE...]",
		Aliases: []string{"w"},
		Short:   "Find packages that own files",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range []string{"aur", "regex"} {
				if cmd.Flags().Changed(name) && !in.Sync {
					return &ExitError{Code: ExitUsageError, Message: fmt.Sprintf("which: --%s requires --sync", name)}
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Files = args
			return run(in)
		},
	}
	f := cmd.Flags()
	f.BoolVarP(&in.Sync, "sync", "s", false, "Search through the sync database(s)")
	f.BoolVarP(&in.AUR, "aur", "u", false, "Include packages from the AUR (requires --sync)")
	f.BoolVarP(&in.Regex, "regex", "x", false, "Use a regex for filtering (requires --sync)")
	return cmd
}

func newViewCommand(run runFunc) *cobra.Command {
	var in model.View
	cmd := &cobra.Command{
		Use:     "view [PACKAGE...]",
		Aliases: []string{"v"},
		Short:   "Display various information about packages",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Packages = args
			return run(in)
		},
	}
	f := cmd.Flags()
	f.BoolVarP(&in.Sync, "sync", "s", false, "Query the sync database instead of installed packages")
	f.BoolVarP(&in.PackageFile, "package-file", "p", false, "Query package files instead of installed packages")
	f.BoolVarP(&in.More, "more", "m", false, "Print more information (required-by, backup files)")
	f.BoolVarP(&in.Files, "files", "f", false, "List the files that the packages provide")
	f.BoolVarP(&in.Changelog, "changelog", "c", false, "Print the ChangeLog of a local package")
	cmd.MarkFlagsMutuallyExclusive("sync", "package-file")
	cmd.MarkFlagsMutuallyExclusive("sync", "changelog")
	cmd.MarkFlagsMutuallyExclusive("more", "files")
	cmd.MarkFlagsMutuallyExclusive("more", "changelog")
	cmd.MarkFlagsMutuallyExclusive("files", "changelog")
	return cmd
}

func newTreeCommand(run runFunc) *cobra.Command {
	var (
		in            model.Tree
		depth         uint32
		depthOptional uint32
	)
	cmd := &cobra.Command{
		Use:     "tree PACKAGE",
		Aliases: []string{"t"},
		Short:   "Show the dependency tree of a package",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Package = args[0]
			if cmd.Flags().Changed("depth") {
				in.Depth = &depth
			}
			if cmd.Flags().Changed("depth-optional") {
				in.DepthOptional = &depthOptional
			}
			return run(in)
		},
	}
	f := cmd.Flags()
	f.BoolVarP(&in.ASCII, "ascii", "a", false, "Use ASCII characters for tree formatting")
	f.Uint32VarP(&depth, "depth", "d", 0, "Limit the depth of recursion")
	f.Uint32VarP(&depthOptional, "depth-optional", "o", 0, "Limit recursion depth for optional dependencies")
	f.BoolVarP(&in.Reverse, "reverse", "r", false, "Show a tree of reverse dependencies")
	return cmd
}

func newPinCommand(run runFunc) *cobra.Command {
	var in model.Pin
	cmd := &cobra.Command{
		Use:     "pin [PACKAGE...]",
		Aliases: []string{"p"},
		Short:   "Mark/unmark packages as explicitly installed",
		Long: `Mark/unmark packages as explicitly installed.

By changing the install reason for a package to 'explicit',
packages that were originally installed as dependencies
can avoid being orphaned and removed indirectly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Packages = args
			return run(in)
		},
	}
	cmd.Flags().BoolVarP(&in.Remove, "remove", "r", false, "Mark the packages as dependencies instead, allowing indirect removal")
	return cmd
}
