package ast

// YAML renderings hand the tree to an executor as plain data.
// Every node marshals as a single-key map naming its variant.

// MarshalYAML implements yaml.Marshaler
//
func (s InputSource) MarshalYAML() (interface{}, error) {
	if s.Kind == SourceFile {
		return map[string]string{"file": s.Path}, nil
	}
	return "stdin", nil
}

// MarshalYAML implements yaml.Marshaler
//
func (s OutputSink) MarshalYAML() (interface{}, error) {
	switch s.Kind {
	case SinkFile:
		return map[string]string{"file": s.Path}, nil
	case SinkStderr:
		return "stderr", nil
	default:
		return "stdout", nil
	}
}

// MarshalYAML implements yaml.Marshaler
//
func (n *Singleton) MarshalYAML() (interface{}, error) {
	return map[string]Command{"command": n.Command}, nil
}

// MarshalYAML implements yaml.Marshaler
//
func (n *Pipeline) MarshalYAML() (interface{}, error) {
	return map[string][]CommandLine{"pipeline": n.Nodes}, nil
}

// MarshalYAML implements yaml.Marshaler
//
func (n *Sequence) MarshalYAML() (interface{}, error) {
	return map[string][]CommandLine{"sequence": n.Nodes}, nil
}

// MarshalYAML implements yaml.Marshaler
//
func (n *Background) MarshalYAML() (interface{}, error) {
	return map[string]CommandLine{"background": n.Node}, nil
}

// MarshalYAML implements yaml.Marshaler
//
func (n *And) MarshalYAML() (interface{}, error) {
	return map[string][]CommandLine{"and": n.Nodes}, nil
}

// MarshalYAML implements yaml.Marshaler
//
func (n *Or) MarshalYAML() (interface{}, error) {
	return map[string][]CommandLine{"or": n.Nodes}, nil
}
