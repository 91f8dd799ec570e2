//go:build linux

package syspath

var platformPrefixes = []string{"/proc", "/sys", "/dev", "/run", "/private"}
var platformExtraGlobs []string

const platformFold = false
