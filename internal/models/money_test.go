package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCents(t *testing.T) {
	cases := []struct {
		in   string
		want Cents
	}{
		{"12.34", 1234},
		{"12,34", 1234},
		{"12", 1200},
		{"0.01", 1},
		{"12.3", 1230},
		{"12.344", 1234}, // rounds down
		{"12.345", 1235}, // rounds up
		{" 7.50 ", 750},
		{"999999.99", 99999999},
	}
	for _, c := range cases {
		got, err := ParseCents(c.in)
		require.NoError(t, err, "input %q", c.in)
		assert.Equal(t, c.want, got, "input %q", c.in)
	}
}

func TestParseCents_Rejects(t *testing.T) {
	for _, in := range []string{"", "0", "0.00", "-5", "+5", "1.2.3", "abc", "12.x"} {
		_, err := ParseCents(in)
		assert.Error(t, err, "input %q", in)
		assert.True(t, IsValidation(err), "input %q should be a validation error", in)
	}
}

func TestCentsString(t *testing.T) {
	assert.Equal(t, "12.34", Cents(1234).String())
	assert.Equal(t, "0.05", Cents(5).String())
	assert.Equal(t, "-10.00", Cents(-1000).String())
	assert.Equal(t, "0.00", Cents(0).String())
}

func TestCentsJSON(t *testing.T) {
	data, err := json.Marshal(Cents(1234))
	require.NoError(t, err)
	assert.Equal(t, `"12.34"`, string(data))

	var c Cents
	require.NoError(t, json.Unmarshal([]byte(`"12.34"`), &c))
	assert.Equal(t, Cents(1234), c)

	// Raw integer cents from older snapshots.
	require.NoError(t, json.Unmarshal([]byte(`1234`), &c))
	assert.Equal(t, Cents(1234), c)
}
