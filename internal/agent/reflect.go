package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// toolMeta is what the registry learns about a generic Tool[I, O] through
// reflection. Tools are stored as any because each instantiation of the
// generic interface is a distinct type.
type toolMeta struct {
	name        string
	description string
	schema      map[string]any
	tool        any
}

// getToolMeta extracts name, description, and parameter schema from a
// Tool[I, O] value.
func getToolMeta(tool any) (*toolMeta, error) {
	v := reflect.ValueOf(tool)
	if !v.IsValid() {
		return nil, errors.New("invalid tool value")
	}

	name, err := callStringMethod(v, "Name")
	if err != nil {
		return nil, err
	}
	description, err := callStringMethod(v, "Description")
	if err != nil {
		return nil, err
	}

	schemaMethod := v.MethodByName("ParameterSchema")
	if !schemaMethod.IsValid() {
		return nil, errors.New("tool does not have ParameterSchema method")
	}
	var schema map[string]any
	if result := schemaMethod.Call(nil)[0]; !result.IsNil() {
		schema = result.Interface().(map[string]any)
	}

	callMethod := v.MethodByName("Call")
	if !callMethod.IsValid() {
		return nil, errors.New("tool does not have Call method")
	}
	if callMethod.Type().NumIn() != 2 || callMethod.Type().NumOut() != 2 {
		return nil, fmt.Errorf("tool %q has unexpected Call signature", name)
	}

	return &toolMeta{
		name:        name,
		description: description,
		schema:      schema,
		tool:        tool,
	}, nil
}

func callStringMethod(v reflect.Value, name string) (string, error) {
	m := v.MethodByName(name)
	if !m.IsValid() {
		return "", fmt.Errorf("tool does not have %s method", name)
	}
	return m.Call(nil)[0].String(), nil
}

// transformArgs converts raw arguments (map[string]any, as parsed from the
// model's JSON) into the tool's typed input via a JSON round-trip. The
// round-trip gives exactly the coercions the input struct's json tags
// declare, with no shape-dependent branching.
func transformArgs(tool any, args map[string]any) (any, error) {
	callMethod := reflect.ValueOf(tool).MethodByName("Call")
	inputType := callMethod.Type().In(1) // 0 is ctx

	var inputVal reflect.Value
	if inputType.Kind() == reflect.Ptr {
		inputVal = reflect.New(inputType.Elem())
	} else {
		inputVal = reflect.New(inputType)
	}

	if args == nil {
		args = map[string]any{}
	}
	argsJSON, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("marshal args: %w", err)
	}
	if err := json.Unmarshal(argsJSON, inputVal.Interface()); err != nil {
		return nil, fmt.Errorf("arguments do not fit the tool's input: %w", err)
	}

	if inputType.Kind() == reflect.Ptr {
		return inputVal.Interface(), nil
	}
	return inputVal.Elem().Interface(), nil
}

// callTool invokes a Tool[I, O] with an already-typed input and returns the
// type-erased output.
func callTool(ctx context.Context, tool any, input any) (any, error) {
	callMethod := reflect.ValueOf(tool).MethodByName("Call")
	results := callMethod.Call([]reflect.Value{
		reflect.ValueOf(ctx),
		reflect.ValueOf(input),
	})
	if errVal := results[1]; !errVal.IsNil() {
		return nil, errVal.Interface().(error)
	}
	return results[0].Interface(), nil
}
