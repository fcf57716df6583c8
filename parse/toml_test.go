package parse

import "testing"

func TestFromTOMLBytes_Scalars(t *testing.T) {
	input := `
name = "example"
count = 3
enabled = true
`
	node, err := Parse([]byte(input), FormatTOML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fields := node.ObjectValue()
	if fields["name"].StringValue() != "example" {
		t.Errorf("name = %+v", fields["name"])
	}
	if fields["count"].NumberValue().Get() != 3 {
		t.Errorf("count = %+v", fields["count"])
	}
	if !fields["enabled"].BoolValue() {
		t.Errorf("enabled = %+v", fields["enabled"])
	}
}

func TestFromTOMLBytes_DatetimeBecomesRFC3339String(t *testing.T) {
	input := "created = 2024-01-02T15:04:05Z\n"
	node, err := Parse([]byte(input), FormatTOML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := node.ObjectValue()["created"].StringValue()
	want := "2024-01-02T15:04:05Z"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFromTOMLBytes_NestedTable(t *testing.T) {
	input := `
[server]
host = "localhost"
port = 8080
`
	node, err := Parse([]byte(input), FormatTOML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	server := node.ObjectValue()["server"].ObjectValue()
	if server["host"].StringValue() != "localhost" {
		t.Errorf("host = %+v", server["host"])
	}
	if server["port"].NumberValue().Get() != 8080 {
		t.Errorf("port = %+v", server["port"])
	}
}

func TestFromTOMLBytes_InvalidSyntax(t *testing.T) {
	if _, err := Parse([]byte("not = [valid"), FormatTOML); err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}
