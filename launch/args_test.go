package launch

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseArgumentsJSON(t *testing.T) {
	data := []byte(`{
		"vehicle_param_file": "/etc/xray\/vehicle.param.yaml",
		"rate": 50,
		"sim": false
	}`)
	args, err := ParseArgumentsJSON(data)
	if err != nil {
		t.Fatal(err)
	}
	want := NameMap{
		"vehicle_param_file": "/etc/xray/vehicle.param.yaml",
		"rate":               "50",
		"sim":                "false",
	}
	if diff := cmp.Diff(want, args); diff != "" {
		t.Errorf("arguments (-want +got):\n%s", diff)
	}
}

func TestParseArgumentsJSONRejects(t *testing.T) {
	for _, data := range []string{
		`{"nested": {"a": "b"}}`,
		`{"list": ["a"]}`,
		`{"nothing": null}`,
		`["not", "an", "object"]`,
	} {
		if _, err := ParseArgumentsJSON([]byte(data)); err == nil {
			t.Errorf("%s: accepted", data)
		}
	}
}
