package parse

import "testing"

func TestFromHCLBytes_Scalars(t *testing.T) {
	input := `
name = "example"
count = 3
enabled = true
`
	node, err := Parse([]byte(input), FormatHCL)
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

func TestFromHCLBytes_List(t *testing.T) {
	input := `tags = ["a", "b", "c"]`
	node, err := Parse([]byte(input), FormatHCL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tags := node.ObjectValue()["tags"].ArrayValue()
	if len(tags) != 3 || tags[1].StringValue() != "b" {
		t.Errorf("tags = %+v", tags)
	}
}

func TestFromHCLBytes_InvalidSyntax(t *testing.T) {
	if _, err := Parse([]byte("not valid { hcl"), FormatHCL); err == nil {
		t.Fatal("expected error for invalid HCL")
	}
}
