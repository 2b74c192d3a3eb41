package tool

// Builtins returns the full set of utility tools exposed to the model.
func Builtins() []Tool {
	return []Tool{
		NewTimestampTool(),
		NewRandomNumberTool(),
		NewUUIDTool(),
		NewHashTool(),
		NewByteSizeTool(),
		NewDayOfWeekTool(),
		NewDaysBetweenTool(),
	}
}

// NewBuiltinRegistry creates a registry pre-populated with all builtin tools.
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	for _, t := range Builtins() {
		r.Register(t)
	}
	return r
}
