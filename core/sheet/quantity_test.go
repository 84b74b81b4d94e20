package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr error
	}{
		{raw: "0", want: 0},
		{raw: "12", want: 12},
		{raw: "12.000", want: 12},
		{raw: "1E+3", want: 1000},
		{raw: "", wantErr: errEmptyQuantity},
		{raw: "-1", wantErr: errNegativeQuantity},
		{raw: "2.5", wantErr: errFractionalQuantity},
		{raw: "99999999999", wantErr: errQuantityOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseQuantity(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := parseQuantity("abc")
	assert.Error(t, err)
}
