package todo

import (
	"encoding/json"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// taskSchema describes the persisted list layout. Validating on load
// catches hand-edited or truncated blobs before they are trusted.
const taskSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "text", "completed", "createdAt"],
    "properties": {
      "id": {"type": "integer"},
      "text": {"type": "string"},
      "completed": {"type": "boolean"},
      "createdAt": {"type": "string"}
    }
  }
}`

var schema = jsonschema.MustCompileString("tasks.schema.json", taskSchema)

func validate(raw []byte) error {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	return schema.Validate(v)
}
