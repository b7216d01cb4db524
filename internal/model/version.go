package model

// Version is overridden at build time with -ldflags "-X pong/internal/model.Version=...".
var Version = "0.4.0"

// Repository coordinates used by the update check.
const (
	RepoOwner = "pong-pm"
	RepoName  = "pong"
)
