//go:build !linux && !darwin

package predicate

// POSIXSupported reports whether this build target can evaluate
// PermissionFilter and OwnershipFilter. False here: the driver must
// reject --perm and uid/gid ownership filters at startup with
// InvalidFilter rather than silently matching nothing.
const POSIXSupported = false
