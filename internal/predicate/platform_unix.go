//go:build linux || darwin

package predicate

// POSIXSupported reports whether this build target can evaluate
// PermissionFilter and OwnershipFilter (i.e. sysmeta.Lstat populates
// RawMode/UID/GID).
const POSIXSupported = true
