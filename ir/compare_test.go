package ir

import (
	"testing"
)

func TestEqual(t *testing.T) {
	ab := FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}, {Key: "b", Val: FromString("x")}})
	ba := FromKeyVals([]KeyVal{{Key: "b", Val: FromString("x")}, {Key: "a", Val: FromInt(1)}})
	parsedOne, err := FromNumber("1")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"nulls", Null(), Null(), true},
		{"nil and null", nil, Null(), false},
		{"both nil", nil, nil, true},
		{"int vs float", FromInt(1), FromFloat(1), false},
		{"int vs parsed int", FromInt(1), parsedOne, true},
		{"float vs float", FromFloat(1.5), FromFloat(1.5), true},
		{"float vs other float", FromFloat(1.5), FromFloat(2.5), false},
		{"text only numbers", &Node{Type: NumberType, Number: "1e999"}, &Node{Type: NumberType, Number: "1e999"}, true},
		{"text only vs int", &Node{Type: NumberType, Number: "1"}, FromInt(1), false},
		{"string vs number", FromString("42"), FromInt(42), false},
		{"field order ignored", ab, ba, true},
		{"array order kept",
			FromSlice([]*Node{FromInt(1), FromInt(2)}),
			FromSlice([]*Node{FromInt(2), FromInt(1)}),
			false},
		{"missing field", ab, FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}), false},
		{"null member is a value",
			FromKeyVals([]KeyVal{{Key: "a", Val: Null()}}),
			FromKeyVals(nil),
			false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("Equal(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}
