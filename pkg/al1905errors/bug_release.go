//go:build !al1905debug

package al1905errors

import "github.com/netlayer/ieee1905al/pkg/logging"

// Bug reports a definition-table inconsistency. Production builds log
// it at Error severity and return it like any other error, rather
// than aborting the process over a bug a caller may be able to work
// around (skip the offending TLV type, fall back to Unknown).
func Bug(err error) error {
	logging.Error("%v", err)
	return err
}
