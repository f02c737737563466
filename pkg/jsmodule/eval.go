package jsmodule

import (
	"github.com/dop251/goja"

	"github.com/agentstation/streamscript/pkg/errors"
)

// Eval runs a CommonJS module the way the stream backend requires it and
// returns the value exported under name. Objects come back as
// map[string]any, arrays as []any and integers as int64.
func Eval(filename string, src []byte, name string) (any, error) {
	vm := goja.New()

	exports := vm.NewObject()
	module := vm.NewObject()
	if err := module.Set("exports", exports); err != nil {
		return nil, err
	}
	if err := vm.Set("module", module); err != nil {
		return nil, err
	}
	if err := vm.Set("exports", exports); err != nil {
		return nil, err
	}

	if _, err := vm.RunScript(filename, string(src)); err != nil {
		return nil, errors.NewParseError("js", filename, err.Error(), err)
	}

	// module.exports may have been reassigned
	exported := module.Get("exports")
	if exported == nil || goja.IsUndefined(exported) || goja.IsNull(exported) {
		return nil, errors.NewNotFoundError("export", name)
	}
	value := exported.ToObject(vm).Get(name)
	if value == nil || goja.IsUndefined(value) {
		return nil, errors.NewNotFoundError("export", name)
	}
	return value.Export(), nil
}
