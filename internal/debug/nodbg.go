//go:build !debug

package debug

// Enabled is false in release builds; Assert is a no-op.
const Enabled = false

func Assert(bool, string, ...any) {}
