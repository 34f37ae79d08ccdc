package smartcast

// InputItem is one selectable device input. MetaName carries the
// user-facing label when the device supplies one; it falls back to the
// machine cname so callers always have something to display.
type InputItem struct {
	Item
	MetaName string
	MetaData string
}

// parseInputItem wraps an item with its input metadata. Inputs lists carry
// an extended value object {name, metadata}; the current-input record
// carries the bare name string.
func parseInputItem(obj map[string]any, extendedMetadata bool) (InputItem, bool) {
	it, ok := parseItem(obj)
	if !ok {
		return InputItem{}, false
	}

	in := InputItem{Item: it}
	if extendedMetadata {
		if meta := getCIMap(obj, "value"); meta != nil {
			in.MetaName = getCIString(meta, "name")
			in.MetaData = getCIString(meta, "metadata")
		}
	} else {
		in.MetaName = it.StringValue()
	}
	if in.MetaName == "" {
		in.MetaName = it.CName
	}
	return in, true
}

type inputsListCommand struct {
	getCommand
}

func newInputsListCommand(class DeviceClass) inputsListCommand {
	return inputsListCommand{getCommand{url: endpoint(class, epInputs)}}
}

func (c inputsListCommand) parse(envelope map[string]any) (any, error) {
	raw := getCIList(envelope, "items")
	if len(raw) == 0 {
		return nil, nil
	}

	inputs := make([]InputItem, 0, len(raw))
	for _, r := range raw {
		obj, ok := r.(map[string]any)
		if !ok {
			continue
		}
		// The list endpoint reports the current selection alongside the
		// selectable inputs; skip it.
		if getCIString(obj, "cname") == "current_input" {
			continue
		}
		if in, ok := parseInputItem(obj, true); ok {
			inputs = append(inputs, in)
		}
	}
	return inputs, nil
}

type currentInputCommand struct {
	getCommand
}

func newCurrentInputCommand(class DeviceClass) currentInputCommand {
	return currentInputCommand{getCommand{url: endpoint(class, epCurrentInput)}}
}

func (c currentInputCommand) parse(envelope map[string]any) (any, error) {
	raw := getCIList(envelope, "items")
	if len(raw) == 0 {
		return nil, nil
	}
	obj, ok := raw[0].(map[string]any)
	if !ok {
		return nil, nil
	}
	in, ok := parseInputItem(obj, false)
	if !ok {
		return nil, nil
	}
	return &in, nil
}

// newChangeInputCommand switches the active input. The device does not
// accept a bare name change: id must be the current input's hashval from
// an immediately preceding read.
func newChangeInputCommand(class DeviceClass, id int, name string) putCommand {
	return newSetItemCommand(endpoint(class, epCurrentInput), id, name)
}
