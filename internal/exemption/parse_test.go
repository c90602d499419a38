package exemption

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		input string
		want  []Exemption
	}{
		{
			name:  "empty string",
			kind:  KindType,
			input: "",
			want:  nil,
		},
		{
			name:  "single type",
			kind:  KindType,
			input: "time.Location",
			want:  []Exemption{{Kind: KindType, Identifier: "time.Location"}},
		},
		{
			name:  "multiple types",
			kind:  KindType,
			input: "time.Location,*sync.Once",
			want: []Exemption{
				{Kind: KindType, Identifier: "time.Location"},
				{Kind: KindType, Identifier: "*sync.Once"},
			},
		},
		{
			name:  "members with spaces",
			kind:  KindMember,
			input: " example.com/app.Config.cache , example.com/app.Config.log ",
			want: []Exemption{
				{Kind: KindMember, Identifier: "example.com/app.Config.cache"},
				{Kind: KindMember, Identifier: "example.com/app.Config.log"},
			},
		},
		{
			name:  "empty parts skipped",
			kind:  KindPackage,
			input: "golang.org/x/**,,",
			want:  []Exemption{{Kind: KindPackage, Identifier: "golang.org/x/**"}},
		},
		{
			name:  "only separators",
			kind:  KindType,
			input: " , ,",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.kind, tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%v, %q) = %v, want %v", tt.kind, tt.input, got, tt.want)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, kind := range []Kind{KindType, KindMember, KindPackage} {
		got, err := ParseKind(kind.String())
		if err != nil {
			t.Fatalf("ParseKind(%q) error: %v", kind, err)
		}
		if got != kind {
			t.Errorf("ParseKind(%q) = %v, want %v", kind, got, kind)
		}
	}

	if _, err := ParseKind("field"); err == nil {
		t.Error("ParseKind(\"field\") expected error")
	}
}

func TestExemptionString(t *testing.T) {
	if got := New(KindMember, "example.com/app.T.f").String(); got != "member:example.com/app.T.f" {
		t.Errorf("String() = %q", got)
	}
	if got := Kind(9).String(); got != "Kind(9)" {
		t.Errorf("String() = %q", got)
	}
}
