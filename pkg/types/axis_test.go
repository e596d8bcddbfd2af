package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAxisValidate(t *testing.T) {
	tests := []struct {
		name    string
		axis    Axis
		wantErr error
	}{
		{name: "row axis", axis: AxisRow},
		{name: "column axis", axis: AxisColumn},
		{name: "unknown axis rejected", axis: Axis("diagonal"), wantErr: ErrInvalidAxis},
		{name: "empty axis rejected", axis: Axis(""), wantErr: ErrInvalidAxis},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.axis.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParseAxis(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Axis
		wantErr error
	}{
		{name: "canonical row", input: "row", want: AxisRow},
		{name: "plural rows", input: "rows", want: AxisRow},
		{name: "canonical column", input: "column", want: AxisColumn},
		{name: "short col", input: "col", want: AxisColumn},
		{name: "plural cols", input: "cols", want: AxisColumn},
		{name: "unknown rejected", input: "slice", wantErr: ErrInvalidAxis},
		{name: "empty rejected", input: "", wantErr: ErrInvalidAxis},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAxis(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
