package runner

import "strings"

// HelperAuto asks DetectHelper to search PATH.
const HelperAuto = "auto"

// KnownHelpers are the pacman-compatible AUR helpers, in order of preference.
var KnownHelpers = []string{"paru", "yay", "pikaur", "trizen"}

// DetectHelper resolves the configured helper name.
// "" disables delegation, "auto" picks the first known helper on PATH
// and any other value is used as given.
func DetectHelper(name string, lookPath func(string) (string, error)) string {
	name = strings.TrimSpace(name)
	if !strings.EqualFold(name, HelperAuto) {
		return name
	}
	for _, h := range KnownHelpers {
		if _, err := lookPath(h); err == nil {
			return h
		}
	}
	return ""
}
