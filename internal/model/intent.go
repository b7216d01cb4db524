package model

// Intent is one validated operation requested by the user.
// The set of implementations is closed: only types in this package satisfy it.
type Intent interface {
	// Name is the subcommand that produces the intent.
	Name() string
	intent()
}

// Install installs packages and their dependencies.
type Install struct {
	Packages  []string
	Reinstall bool // reinstall packages that are already up to date
	Download  bool // retrieve packages without installing them
	AUR       bool // let the AUR helper resolve foreign packages
}

// Remove removes packages and, by default, their orphaned dependencies.
type Remove struct {
	Packages    []string
	Cascade     bool // also remove packages depending on the targets
	KeepOrphans bool
	Explicit    bool // remove orphans even when marked explicit
	Save        bool // keep configuration files
	NoAUR       bool
}

// Upgrade refreshes the sync databases and upgrades the system.
type Upgrade struct {
	NoRefresh bool // upgrade only
	Refresh   bool // refresh only
	Download  bool
	NoAUR     bool
}

// Clean removes cached packages and unused sync databases.
type Clean struct {
	All   bool // also drop packages that are still installed
	NoAUR bool
}

// Search looks up packages by regex.
type Search struct {
	Queries   []string
	Installed bool // search the local database
	AUR       bool
}

// List lists installed packages.
type List struct {
	Explicit bool
	Deps     bool
	Free     bool // not required by any installed package
	Sync     bool // found in the sync databases
	NoSync   bool // foreign packages
	Upgrades bool // out of date
}

// Which finds the packages that own files.
type Which struct {
	Files []string
	Sync  bool // search the files databases instead of the local one
	AUR   bool
	Regex bool
}

// View displays information about packages.
type View struct {
	Packages    []string
	Sync        bool
	PackageFile bool
	More        bool
	Files       bool
	Changelog   bool
}

// Tree shows the dependency tree of a package.
type Tree struct {
	Package       string
	ASCII         bool
	Depth         *uint32
	DepthOptional *uint32
	Reverse       bool
}

// Pin changes the install reason of packages.
type Pin struct {
	Packages []string
	Remove   bool // mark as dependencies instead of explicit
}

func (Install) Name() string { return "install" }
func (Remove) Name() string  { return "remove" }
func (Upgrade) Name() string { return "upgrade" }
func (Clean) Name() string   { return "clean" }
func (Search) Name() string  { return "search" }
func (List) Name() string    { return "list" }
func (Which) Name() string   { return "which" }
func (View) Name() string    { return "view" }
func (Tree) Name() string    { return "tree" }
func (Pin) Name() string     { return "pin" }

func (Install) intent() {}
func (Remove) intent()  {}
func (Upgrade) intent() {}
func (Clean) intent()   {}
func (Search) intent()  {}
func (List) intent()    {}
func (Which) intent()   {}
func (View) intent()    {}
func (Tree) intent()    {}
func (Pin) intent()     {}

// AllIntents returns the zero value of every intent variant.
func AllIntents() []Intent {
	return []Intent{
		Install{},
		Remove{},
		Upgrade{},
		Clean{},
		Search{},
		List{},
		Which{},
		View{},
		Tree{},
		Pin{},
	}
}
