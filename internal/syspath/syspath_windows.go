//go:build windows

package syspath

var platformPrefixes = []string{
	`C:\Windows`,
	`C:\Program Files\Windows`,
	`C:\ProgramData\Microsoft`,
	`C:\System Volume Information`,
}

// platformExtraGlobs holds substrings checked case-insensitively
// anywhere in the path: any path containing \system32 or \syswow64 is
// blocked regardless of where it falls in the tree.
var platformExtraGlobs = []string{`\system32`, `\syswow64`}

const platformFold = true
