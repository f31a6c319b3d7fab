package launch

import (
	"github.com/buger/jsonparser"
	"github.com/pkg/errors"
)

// ParseArgumentsJSON reads launch arguments from a flat JSON object.
// Strings are unescaped, numbers and booleans are taken as written.
func ParseArgumentsJSON(data []byte) (NameMap, error) {
	args := make(NameMap)
	err := jsonparser.ObjectEach(data, func(key []byte, value []byte, dataType jsonparser.ValueType, offset int) error {
		name, err := jsonparser.ParseString(key)
		if err != nil {
			return errors.Wrapf(err, "argument name at offset %d", offset)
		}
		switch dataType {
		case jsonparser.String:
			v, err := jsonparser.ParseString(value)
			if err != nil {
				return errors.Wrapf(err, "argument %q", name)
			}
			args[name] = v
		case jsonparser.Number, jsonparser.Boolean:
			args[name] = string(value)
		default:
			return errors.Errorf("argument %q: unsupported value type %v", name, dataType)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse launch arguments")
	}
	return args, nil
}
