package bridge

import "github.com/invopop/jsonschema"

// FrameSchema returns the JSON schema for the bridge wire format. Bridge
// implementations can use it to validate frames before replaying them.
func FrameSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{DoNotReference: true}
	return reflector.Reflect(&Frame{})
}
