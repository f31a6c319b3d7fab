package launch

import (
	"testing"

	"github.com/pkg/errors"
)

func TestNameValidation(t *testing.T) {
	// Positive testing
	positives := [...]string{
		"~",
		"foo",
		"foo/bar",
		"foo_0/bar1_",
		"_foo",
		"foo/_bar",
		"/foo",
		"/foo/bar",
		"/_hidden/imu",
		"~/foo",
		"~/foo/bar",
		"sensors/imu/raw",
		"/sensing/vesc/imu",
	}
	for _, p := range positives {
		if !isValidName(p) {
			t.Error(p)
		}
	}

	// Negative testing
	negatives := [...]string{
		"",
		"/",
		"foo/",
		"/foo/",
		"~/",
		"~foo",
		"~foo/bar",
		"foo//bar",
		"^foo//bar",
		"//foo",
		"0foo",
		"foo/0bar",
		"foo/~bar",
		"foo bar",
	}
	for _, n := range negatives {
		if isValidName(n) {
			t.Error(n)
		}
	}
}

func TestCanonicalizeName(t *testing.T) {
	if canonicalizeName("/") != "/" {
		t.Fail()
	}

	if canonicalizeName("/foo//bar/") != "/foo/bar" {
		t.Fail()
	}

	if canonicalizeName("foo//bar///baz/") != "foo/bar/baz" {
		t.Fail()
	}

	if canonicalizeName("~foo//bar///baz/") != "~foo/bar/baz" {
		t.Fail()
	}
}

func TestSpecialNamespace(t *testing.T) {
	if !isGlobalName("/foo") {
		t.Fail()
	}
	if isGlobalName("~foo") {
		t.Fail()
	}
	if isGlobalName("foo") {
		t.Fail()
	}

	if isPrivateName("/foo") {
		t.Fail()
	}
	if !isPrivateName("~foo") {
		t.Fail()
	}
	if isPrivateName("foo") {
		t.Fail()
	}
}

func TestQualifyNamespace(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"", "/"},
		{"/", "/"},
		{"vesc", "/vesc"},
		{"/vesc", "/vesc"},
		{"vesc/", "/vesc"},
		{"//sensing//vesc/", "/sensing/vesc"},
	}
	for _, c := range cases {
		ns, err := QualifyNamespace(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if ns != c.out {
			t.Errorf("%q: got %q, want %q", c.in, ns, c.out)
		}
	}

	for _, bad := range []string{"~vesc", "0vesc", "ve sc"} {
		if _, err := QualifyNamespace(bad); errors.Cause(err) != ErrInvalidName {
			t.Errorf("%q: unexpected error %v", bad, err)
		}
	}
}

func TestValidateNodeName(t *testing.T) {
	for _, good := range []string{"vesc_driver", "_driver"} {
		if err := ValidateNodeName(good); err != nil {
			t.Error(err)
		}
	}
	for _, bad := range []string{"", "vesc/driver", "~driver", "1driver"} {
		if err := ValidateNodeName(bad); errors.Cause(err) != ErrInvalidName {
			t.Errorf("%q: unexpected error %v", bad, err)
		}
	}
}

func TestRemappingValidate(t *testing.T) {
	positives := []Remapping{
		{From: "sensors/imu/raw", To: "/sensing/vesc/imu"},
		{From: "~/imu", To: "/sensing/imu"},
		{From: "imu", To: "/_hidden/imu"},
	}
	for _, r := range positives {
		if err := r.Validate(); err != nil {
			t.Errorf("%v: %v", r, err)
		}
	}
	negatives := []Remapping{
		{From: "", To: "/sensing/vesc/imu"},
		{From: "sensors/imu/raw", To: ""},
		{From: "sensors//raw", To: "/imu"},
		{From: "imu", To: "/sensing/0imu"},
		{From: "imu/", To: "/x"},
		{From: "imu", To: "/sensing/imu/"},
		{From: "~imu", To: "/x"},
		{From: "/", To: "/x"},
	}
	for _, r := range negatives {
		if err := r.Validate(); errors.Cause(err) != ErrInvalidName {
			t.Errorf("%v: unexpected error %v", r, err)
		}
	}
}

func TestParseArguments(t *testing.T) {
	args := []string{
		"vehicle_param_file:=/etc/vehicle.param.yaml",
		"url:=http://host/?a:=b",
		"foo",
		"42",
	}

	mapping, rest, err := ParseArguments(args)
	if err != nil {
		t.Fatal(err)
	}
	if mapping["vehicle_param_file"] != "/etc/vehicle.param.yaml" {
		t.Fail()
	}
	if mapping["url"] != "http://host/?a:=b" {
		t.Error(mapping["url"])
	}
	if len(rest) != 2 {
		t.Fail()
	}
	if rest[0] != "foo" || rest[1] != "42" {
		t.Fail()
	}

	if _, _, err := ParseArguments([]string{":=value"}); err == nil {
		t.Error("empty argument name accepted")
	}
}
