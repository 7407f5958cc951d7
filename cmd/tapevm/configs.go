package main

import (
	"fmt"

	"github.com/reusee/dscope"
	"github.com/reusee/tapevm/configs"
)

func checkConfigs(scope dscope.Scope) (err error) {
	scope.Call(func(
		loader configs.Loader,
	) {
		if e := loader.Validate(); e != nil {
			err = wrap(fmt.Errorf("config %v: %w", loader.Paths(), e))
		}
	})
	return
}
