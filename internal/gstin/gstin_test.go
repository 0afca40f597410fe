package gstin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_Valid(t *testing.T) {
	v := Validate("27AAPFU0939F1ZV")
	assert.True(t, v.Valid)
	assert.Empty(t, v.Err)
	assert.Equal(t, "27", v.StateCode)
	assert.Equal(t, "Maharashtra", v.StateName)
}

func TestValidate_NormalizesInput(t *testing.T) {
	v := Validate("  29aabcu9603r1zm ")
	assert.True(t, v.Valid)
	assert.Equal(t, "29", v.StateCode)
	assert.Equal(t, "Karnataka", v.StateName)
}

func TestValidate_Invalid(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"too short", "ABC123"},
		{"too long", "27AAPFU0939F1ZVX"},
		{"missing Z", "27AAPFU0939F1XV"},
		{"letters in state code", "XXAAPFU0939F1ZV"},
		{"unknown state code", "00AAPFU0939F1ZV"},
		{"digits in pan prefix", "27AA1FU0939F1ZV"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := Validate(tc.in)
			assert.False(t, v.Valid)
			assert.NotEmpty(t, v.Err)
			assert.Empty(t, v.StateCode)
		})
	}
}

func TestStateCode(t *testing.T) {
	assert.Equal(t, "07", StateCode("07AABCS1429B1ZS"))
	assert.Equal(t, "", StateCode("not-a-gstin"))
}

func TestStateName(t *testing.T) {
	name, ok := StateName("33")
	assert.True(t, ok)
	assert.Equal(t, "Tamil Nadu", name)

	_, ok = StateName("44")
	assert.False(t, ok)
}
