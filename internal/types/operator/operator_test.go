package operator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecTable(t *testing.T) {
	tests := []struct {
		op    Operator
		prec  int
		right bool
	}{
		{Mod, 5, false},
		{Add, 10, true},
		{Sub, 10, false},
		{Mul, 15, true},
		{Div, 15, false},
		{Pow, 20, false},
	}

	for _, tt := range tests {
		t.Run(tt.op.Name(), func(t *testing.T) {
			assert.Equal(t, tt.prec, tt.op.Precedence())
			assert.Equal(t, tt.right, tt.op.IsRightAssociative())
		})
	}
}

func TestSpecTable_IsTotal(t *testing.T) {
	assert.Len(t, specs, len(All))
	for _, op := range All {
		_, ok := specs[op]
		assert.True(t, ok, "operator %q has no spec", op)
		assert.NotEmpty(t, op.Name())
		assert.Positive(t, op.Precedence())
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Operator
		wantErr bool
	}{
		{input: "+", want: Add},
		{input: "//", want: Div},
		{input: "pow", want: Pow},
		{input: "mod", want: Mod},
		{input: "/", wantErr: true},
		{input: "", wantErr: true},
		{input: "AND", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Div.Validate())
	assert.Error(t, Operator("&").Validate())
}

func TestOperator_JSON(t *testing.T) {
	var payload struct {
		Op Operator `json:"op"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"op":"mul"}`), &payload))
	assert.Equal(t, Mul, payload.Op)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"op":"*"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"op":"?"}`), &payload))
}
