//go:build darwin

package syspath

var platformPrefixes = []string{"/System", "/Library", "/private", "/Volumes"}
var platformExtraGlobs []string

const platformFold = false
