package gen

import (
	"reflect"
	"testing"
)

func TestParseFieldList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Field
	}{
		{
			name:  "simple pairs",
			input: "id:int,name:string",
			want:  []Field{{"id", "int"}, {"name", "string"}},
		},
		{
			name:  "single entry without comma",
			input: "id:int",
			want:  []Field{{"id", "int"}},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "trailing comma tolerated",
			input: "id:int,name:string,",
			want:  []Field{{"id", "int"}, {"name", "string"}},
		},
		{
			name:  "whitespace trimmed",
			input: "id : int , name : string",
			want:  []Field{{"id", "int"}, {"name", "string"}},
		},
		{
			name:  "generic type keeps inner comma",
			input: "items:array<string,mixed>",
			want:  []Field{{"items", "array<string,mixed>"}},
		},
		{
			name:  "nested generics",
			input: "map:array<string,array<int,string>>,simple:int",
			want:  []Field{{"map", "array<string,array<int,string>>"}, {"simple", "int"}},
		},
		{
			name:  "callable signature keeps inner colon",
			input: "filter:callable(string):bool,id:int",
			want:  []Field{{"filter", "callable(string):bool"}, {"id", "int"}},
		},
		{
			name:  "qualified type",
			input: `address:App\Models\Address`,
			want:  []Field{{"address", `App\Models\Address`}},
		},
		{
			name:  "empty name dropped",
			input: ":int,name:string",
			want:  []Field{{"name", "string"}},
		},
		{
			name:  "empty type dropped",
			input: "id:,name:string",
			want:  []Field{{"name", "string"}},
		},
		{
			name:  "bare fragment without colon dropped",
			input: "garbage,name:string",
			want:  []Field{{"name", "string"}},
		},
		{
			name:  "only separators",
			input: ",,,",
			want:  nil,
		},
		{
			name:  "unbalanced closer treated as literal",
			input: "a:int>,b:string",
			want:  []Field{{"a", "int>"}, {"b", "string"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFieldList(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseFieldList(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFieldList_OrderPreservedAndPure(t *testing.T) {
	input := "z:int,a:string,m:bool"
	first := ParseFieldList(input)
	second := ParseFieldList(input)

	if !reflect.DeepEqual(first, second) {
		t.Error("same input should always yield the same output")
	}
	wantOrder := []string{"z", "a", "m"}
	for i, f := range first {
		if f.Name != wantOrder[i] {
			t.Errorf("entry %d = %q, want %q (order must be preserved)", i, f.Name, wantOrder[i])
		}
	}
}
