package interp

import (
	"sort"
	"strings"
)

// Class is the class object of spec §3: a name, optional superclass, a
// method map, and a static field bag. A Class "is itself a kind of
// instance": static property access reads StaticFields with the same
// superclass fallback the method map uses.
type Class struct {
	Name         string
	Superclass   *Class
	Methods      map[string]Method
	StaticFields map[string]Value
	Init         Method
}

// FindMethod looks up name on the class, falling back to the superclass
// chain.
func (c *Class) FindMethod(name string) Method {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

// GetStatic reads a static field or static method, walking the
// superclass chain ("including inherited statics", spec §4.5).
func (c *Class) GetStatic(name string) (Value, bool) {
	if v, ok := c.StaticFields[name]; ok {
		return v, true
	}
	if c.Superclass != nil {
		return c.Superclass.GetStatic(name)
	}
	return nil, false
}

// SetStatic writes a static field on this class only — property writes
// never walk the superclass (spec §4.5 "Property write").
func (c *Class) SetStatic(name string, value Value) {
	c.StaticFields[name] = value
}

// DeleteStatic removes a static field from this class only, returning
// whether it existed.
func (c *Class) DeleteStatic(name string) bool {
	_, ok := c.StaticFields[name]
	delete(c.StaticFields, name)
	return ok
}

// Arity is init's arity, or 0 if the class has no initializer.
func (c *Class) Arity() int {
	if c.Init != nil {
		return c.Init.Arity()
	}
	return 0
}

// Call instantiates a bare instance and, if present, binds and runs init
// with the supplied arguments (spec §4.5 "Instance construction").
func (c *Class) Call(i *Interpreter, args []Value) Value {
	instance := &Instance{Class: c, Fields: make(map[string]Value)}
	if c.Init != nil {
		c.Init.Bind(instance).Call(i, args)
	}
	return instance
}

func (c *Class) String() string {
	return "<class " + c.Name + ">"
}

// Instance is a class instance: a field bag plus a class pointer (spec
// §3 "Instance").
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

// GetProperty implements spec §4.5 "Property access": field wins; then a
// bound method; a getter among those is invoked immediately and its
// result returned instead of the function value itself.
func (inst *Instance) GetProperty(i *Interpreter, name string) (Value, bool) {
	if v, ok := inst.Fields[name]; ok {
		return v, true
	}
	method := inst.Class.FindMethod(name)
	if method == nil {
		return nil, false
	}
	bound := method.Bind(inst)
	if bound.IsGetter() {
		return bound.Call(i, nil), true
	}
	return bound, true
}

// SetProperty writes the instance's field bag directly — no superclass
// walk.
func (inst *Instance) SetProperty(name string, value Value) {
	inst.Fields[name] = value
}

// DeleteProperty removes name from the field bag, returning whether it
// existed.
func (inst *Instance) DeleteProperty(name string) bool {
	_, ok := inst.Fields[name]
	delete(inst.Fields, name)
	return ok
}

// String renders "NAME { field: value, ... }" per spec §6: fields then
// methods, inherited methods included, init excluded, shadowed entries
// excluded. Field names are sorted, and method names are sorted within each
// class of the chain (subclass first), for a stable rendering.
func (inst *Instance) String() string {
	var parts []string
	seen := make(map[string]bool)

	fieldNames := make([]string, 0, len(inst.Fields))
	for name := range inst.Fields {
		fieldNames = append(fieldNames, name)
	}
	sort.Strings(fieldNames)
	for _, name := range fieldNames {
		parts = append(parts, name+": "+Stringify(inst.Fields[name]))
		seen[name] = true
	}

	for c := inst.Class; c != nil; c = c.Superclass {
		methodNames := make([]string, 0, len(c.Methods))
		for name := range c.Methods {
			methodNames = append(methodNames, name)
		}
		sort.Strings(methodNames)
		for _, name := range methodNames {
			if name == "init" || seen[name] {
				continue
			}
			seen[name] = true
			parts = append(parts, name+": "+c.Methods[name].String())
		}
	}

	return inst.Class.Name + " { " + strings.Join(parts, ", ") + " }"
}
