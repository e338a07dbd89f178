package gst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gstbill/billing-api/internal/domain/gst"
)

// ──────────────────────────────────────────────────────────────────────────────
// Structural patterns
// ──────────────────────────────────────────────────────────────────────────────

func TestIsValidGSTIN(t *testing.T) {
	cases := []struct {
		name  string
		value string
		valid bool
	}{
		{"valid maharashtra", "27AAPFU0939F1ZV", true},
		{"valid karnataka", "29ABCDE1234F1Z5", true},
		{"too short", "27AAPFU0939F1Z", false},
		{"too long", "27AAPFU0939F1ZV5", false},
		{"lowercase rejected", "27aapfu0939f1zv", false},
		{"missing Z at position 14", "27AAPFU0939F1XV", false},
		{"entity code zero rejected", "27AAPFU0939F0ZV", false},
		{"letters in state code", "AAAAPFU0939F1ZV", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, gst.IsValidGSTIN(tc.value))
		})
	}
}

func TestIsValidPAN(t *testing.T) {
	assert.True(t, gst.IsValidPAN("ABCDE1234F"))
	assert.False(t, gst.IsValidPAN("ABCD1234F"))   // only 4 leading letters
	assert.False(t, gst.IsValidPAN("ABCDE12345"))  // digit in check position
	assert.False(t, gst.IsValidPAN("abcde1234f"))  // lowercase
	assert.False(t, gst.IsValidPAN("ABCDE1234FX")) // too long
}

func TestIsValidIFSC(t *testing.T) {
	assert.True(t, gst.IsValidIFSC("SBIN0001234"))
	assert.True(t, gst.IsValidIFSC("HDFC0CAG123"))
	assert.False(t, gst.IsValidIFSC("SBIN1001234")) // fifth char must be 0
	assert.False(t, gst.IsValidIFSC("SB1N0001234")) // digit in bank code
	assert.False(t, gst.IsValidIFSC("SBIN000123"))  // too short
}

func TestIsValidPincodeAndPhone(t *testing.T) {
	assert.True(t, gst.IsValidPincode("400001"))
	assert.False(t, gst.IsValidPincode("4000"))
	assert.False(t, gst.IsValidPincode("40000A"))

	assert.True(t, gst.IsValidPhone("9876543210"))
	assert.False(t, gst.IsValidPhone("1234567890")) // must start 6-9
	assert.False(t, gst.IsValidPhone("98765432"))
}

// ──────────────────────────────────────────────────────────────────────────────
// State codes
// ──────────────────────────────────────────────────────────────────────────────

func TestStateName(t *testing.T) {
	assert.Equal(t, "Maharashtra", gst.StateName("27AAPFU0939F1ZV"))
	assert.Equal(t, "Karnataka", gst.StateName("29ABCDE1234F1Z5"))
	assert.Equal(t, "", gst.StateName("99ABCDE1234F1Z5")) // unassigned code
	assert.Equal(t, "", gst.StateName("2"))
	assert.Equal(t, "", gst.StateName(""))
}

// ──────────────────────────────────────────────────────────────────────────────
// Field masks
// ──────────────────────────────────────────────────────────────────────────────

func TestFormatGSTIN_Grouping(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"27", "27"},
		{"27AAP", "27-AAP"},
		{"27AAPFU09", "27-AAPFU-09"},
		{"27AAPFU0939F1ZV", "27-AAPFU-0939-F1ZV"},
		{"27aapfu0939f1zv", "27-AAPFU-0939-F1ZV"},
		{"27-AAPFU-0939-F1ZV", "27-AAPFU-0939-F1ZV"}, // already formatted
	}
	for _, tc := range cases {
		assert.Equal(t, tc.out, gst.Format(gst.FieldGSTIN, tc.in), "input %q", tc.in)
	}
}

// Round-trip: formatting then unformatting recovers the case-normalized
// alphanumeric content.
func TestMaskRoundTrip(t *testing.T) {
	cases := []struct {
		kind gst.FieldKind
		raw  string
	}{
		{gst.FieldGSTIN, "27aapfu0939f1zv"},
		{gst.FieldGSTIN, "27-AAPFU-0939-F1ZV"},
		{gst.FieldPAN, "abcde1234f"},
		{gst.FieldIFSC, "sbin 0001234"},
		{gst.FieldPincode, "400 001"},
		{gst.FieldPhone, "98765-43210"},
	}
	for _, tc := range cases {
		formatted := gst.Format(tc.kind, tc.raw)
		assert.Equal(t, gst.Unformat(tc.kind, tc.raw), gst.Unformat(tc.kind, formatted),
			"round-trip must preserve content for kind %d input %q", tc.kind, tc.raw)
	}
}

func TestUnformat(t *testing.T) {
	assert.Equal(t, "27AAPFU0939F1ZV", gst.Unformat(gst.FieldGSTIN, "27-AAPFU-0939-F1ZV"))
	assert.Equal(t, "ABCDE1234F", gst.Unformat(gst.FieldPAN, "abcde·1234·f"))
	assert.Equal(t, "9876543210", gst.Unformat(gst.FieldPhone, "98765 43210"))
	assert.Equal(t, "400001", gst.Unformat(gst.FieldPincode, "400-001"))
}
