package hook

import (
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/glorpus-work/depcache/pkg/errors"
)

// TengoExecutor executes Tengo hook scripts.
type TengoExecutor struct {
	scripts map[Type]string
	mutex   sync.RWMutex
}

// NewTengoExecutor creates a new Tengo script executor.
func NewTengoExecutor() *TengoExecutor {
	return &TengoExecutor{
		scripts: make(map[Type]string),
	}
}

// Execute runs the script registered for hookType with the given context.
// An unregistered hook type is a no-op. A script can fail the run by setting
// an `err` variable.
func (e *TengoExecutor) Execute(hookType Type, ctx Context) error {
	e.mutex.RLock()
	script, exists := e.scripts[hookType]
	e.mutex.RUnlock()
	if !exists {
		return nil
	}

	instance := tengo.NewScript([]byte(script))
	instance.SetImports(stdlib.GetModuleMap("fmt", "os", "text", "times"))

	_ = instance.Add("projectDir", ctx.ProjectDir)
	_ = instance.Add("cacheDir", ctx.CacheDir)
	_ = instance.Add("moduleCount", ctx.Modules)
	for k, v := range ctx.Vars {
		_ = instance.Add(k, v)
	}

	compiled, err := instance.Run()
	if err != nil {
		return errors.Wrapf(errors.ErrHookExecution, "%s: %v", hookType, err)
	}

	errVar := compiled.Get("err")
	if errVar != nil {
		switch v := errVar.Value().(type) {
		case error:
			return errors.Wrap(errors.ErrHookScript, v.Error())
		case string:
			if v != "" {
				return errors.Wrap(errors.ErrHookScript, v)
			}
		}
	}
	return nil
}

// AddScript adds or replaces the script for hookType.
func (e *TengoExecutor) AddScript(hookType Type, script string) error {
	if hookType == "" {
		return errors.ErrHookTypeEmpty
	}
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.scripts[hookType] = script
	return nil
}

// HasScript checks if a script exists for hookType.
func (e *TengoExecutor) HasScript(hookType Type) bool {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	_, exists := e.scripts[hookType]
	return exists
}
