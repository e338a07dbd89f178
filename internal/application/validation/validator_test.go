package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstbill/billing-api/internal/application/dto"
	"github.com/gstbill/billing-api/internal/application/validation"
	"github.com/gstbill/billing-api/internal/domain"
)

func validCompanyRequest() dto.CreateCompanyRequest {
	return dto.CreateCompanyRequest{
		Name:  "Sharma Traders",
		GSTIN: "27AAPFU0939F1ZV",
	}
}

func TestStruct_ValidCompany(t *testing.T) {
	in := validCompanyRequest()
	in.PAN = "AAPFU0939F"
	in.Pincode = "400001"
	in.Phone = "9876543210"
	in.Email = "accounts@sharmatraders.in"
	in.IFSCCode = "SBIN0001234"

	assert.NoError(t, validation.Struct(in))
}

// A GSTIN failing the structural pattern is rejected even when it is
// syntactically close (correct length, one character off).
func TestStruct_GSTINCloseButWrong(t *testing.T) {
	in := validCompanyRequest()
	in.GSTIN = "27AAPFU0939F1XV" // 'X' where 'Z' is mandatory

	err := validation.Struct(in)
	require.Error(t, err)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "gstin", verr.Fields[0].Path)
	assert.Equal(t, "gstin", verr.Fields[0].Code)
}

func TestStruct_GSTINWrongLength(t *testing.T) {
	in := validCompanyRequest()
	in.GSTIN = "27AAPFU0939F1Z" // 14 chars

	err := validation.Struct(in)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "gstin", verr.Fields[0].Path)
	assert.Equal(t, "len", verr.Fields[0].Code)
}

// Optional fields may be empty without tripping their format validators.
func TestStruct_EmptyOptionalsAccepted(t *testing.T) {
	in := validCompanyRequest()
	in.PAN = ""
	in.Pincode = ""
	in.Phone = ""
	in.IFSCCode = ""

	assert.NoError(t, validation.Struct(in))
}

func TestStruct_MultipleFailures(t *testing.T) {
	in := dto.CreateCompanyRequest{
		Name:    "X", // below min=2
		GSTIN:   "27AAPFU0939F1ZV",
		Pincode: "40",
		Phone:   "12345",
	}

	err := validation.Struct(in)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))

	paths := map[string]string{}
	for _, f := range verr.Fields {
		paths[f.Path] = f.Code
	}
	assert.Equal(t, "min", paths["name"])
	assert.Equal(t, "pincode", paths["pincode"])
	assert.Equal(t, "inphone", paths["phone"])
}

// Customer GSTIN is optional: absent passes, present-but-invalid fails.
func TestStruct_CustomerOptionalGSTIN(t *testing.T) {
	ok := dto.CreateCustomerRequest{Name: "Walk-in Customer"}
	assert.NoError(t, validation.Struct(ok))

	bad := dto.CreateCustomerRequest{Name: "Registered Buyer", GSTIN: "not-a-gstin-015"}
	err := validation.Struct(bad)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "gstin", verr.Fields[0].Path)
}

// Pointer fields on partial updates validate only when present; a provided
// empty string on a format field is treated as a clear and must not fail.
func TestStruct_UpdateRequestPointers(t *testing.T) {
	bad := "SBIN1001234"
	err := validation.Struct(dto.UpdateCompanyRequest{IFSCCode: &bad})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "ifscCode", verr.Fields[0].Path)

	empty := ""
	assert.NoError(t, validation.Struct(dto.UpdateCompanyRequest{IFSCCode: &empty}))
	assert.NoError(t, validation.Struct(dto.UpdateCompanyRequest{}))
}
