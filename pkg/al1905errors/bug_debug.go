//go:build al1905debug

package al1905errors

// Bug reports a definition-table inconsistency. Debug builds panic
// immediately so the inconsistency surfaces at the point it was
// detected, instead of propagating as an ordinary error return.
func Bug(err error) error {
	panic(err)
}
