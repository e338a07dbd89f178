// Package gst contains structural validation for Indian GST business
// identifiers (GSTIN, PAN, IFSC) and the related address/contact formats.
// These are format checks only; no checksum verification is defined for them.
package gst

import "regexp"

// Structural patterns.
//
// GSTIN: 2 digits (state code) + 5 letters (PAN prefix) + 4 digits + 1 letter
// + 1 entity code + literal 'Z' + 1 check character.
var (
	GSTINPattern   = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)
	PANPattern     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]{1}$`)
	IFSCPattern    = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	PincodePattern = regexp.MustCompile(`^\d{6}$`)
	PhonePattern   = regexp.MustCompile(`^[6-9]\d{9}$`)
)

// IsValidGSTIN reports whether s matches the 15-character GSTIN structure.
func IsValidGSTIN(s string) bool { return GSTINPattern.MatchString(s) }

// IsValidPAN reports whether s matches the 10-character PAN structure.
func IsValidPAN(s string) bool { return PANPattern.MatchString(s) }

// IsValidIFSC reports whether s matches the 11-character IFSC structure.
func IsValidIFSC(s string) bool { return IFSCPattern.MatchString(s) }

// IsValidPincode reports whether s is a 6-digit postal code.
func IsValidPincode(s string) bool { return PincodePattern.MatchString(s) }

// IsValidPhone reports whether s is a 10-digit Indian mobile number.
func IsValidPhone(s string) bool { return PhonePattern.MatchString(s) }

// gstStateNames maps the two-digit GSTIN state code to the state name.
var gstStateNames = map[string]string{
	"01": "Jammu and Kashmir",
	"02": "Himachal Pradesh",
	"03": "Punjab",
	"04": "Chandigarh",
	"05": "Uttarakhand",
	"06": "Haryana",
	"07": "Delhi",
	"08": "Rajasthan",
	"09": "Uttar Pradesh",
	"10": "Bihar",
	"11": "Sikkim",
	"12": "Arunachal Pradesh",
	"13": "Nagaland",
	"14": "Manipur",
	"15": "Mizoram",
	"16": "Tripura",
	"17": "Meghalaya",
	"18": "Assam",
	"19": "West Bengal",
	"20": "Jharkhand",
	"21": "Odisha",
	"22": "Chhattisgarh",
	"23": "Madhya Pradesh",
	"24": "Gujarat",
	"26": "Dadra and Nagar Haveli and Daman and Diu",
	"27": "Maharashtra",
	"29": "Karnataka",
	"30": "Goa",
	"31": "Lakshadweep",
	"32": "Kerala",
	"33": "Tamil Nadu",
	"34": "Puducherry",
	"35": "Andaman and Nicobar Islands",
	"36": "Telangana",
	"37": "Andhra Pradesh",
}

// StateCode returns the two-digit state code prefix of a GSTIN, or "" when the
// value is too short to carry one.
func StateCode(gstin string) string {
	if len(gstin) < 2 {
		return ""
	}
	return gstin[:2]
}

// StateName resolves the state name encoded in a GSTIN prefix. Unknown codes
// return "".
func StateName(gstin string) string {
	return gstStateNames[StateCode(gstin)]
}
