package drawable

import "github.com/davecgh/go-spew/spew"

var spewConfig = &spew.ConfigState{
	Indent:                  "  ",
	DisableCapacities:       true,
	DisablePointerAddresses: true,
	SortKeys:                true,
}

// Dump renders calls in a human readable form for debugging.
func Dump(calls []Call) string {
	return spewConfig.Sdump(calls)
}
