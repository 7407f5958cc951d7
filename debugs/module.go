package debugs

import "github.com/reusee/dscope"

// Module needs a logs.Module in the same scope.
type Module struct {
	dscope.Module
}
