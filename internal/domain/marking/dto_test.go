package marking

import (
	"testing"

	"github.com/pontocerto/ponto-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func TestMarkTimeRequest_Validate_Success(t *testing.T) {
	req := MarkTimeRequest{
		Type:      "entrada",
		Latitude:  floatPtr(38.7223),
		Longitude: floatPtr(-9.1393),
	}

	assert.NoError(t, req.Validate())
}

func TestMarkTimeRequest_Validate_InvalidType(t *testing.T) {
	req := MarkTimeRequest{
		Type:      "almoco",
		Latitude:  floatPtr(38.7223),
		Longitude: floatPtr(-9.1393),
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "type")
}

func TestMarkTimeRequest_Validate_MissingCoordinates(t *testing.T) {
	req := MarkTimeRequest{Type: "entrada"}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	details := errs.ToMap()
	assert.Contains(t, details, "latitude")
	assert.Contains(t, details, "longitude")
}

func TestMarkTimeRequest_Validate_CoordinatesOutOfRange(t *testing.T) {
	req := MarkTimeRequest{
		Type:      "saida",
		Latitude:  floatPtr(91),
		Longitude: floatPtr(-181),
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	details := errs.ToMap()
	assert.Contains(t, details, "latitude")
	assert.Contains(t, details, "longitude")
}

func TestMarkTimeRequest_Validate_AddressOptional(t *testing.T) {
	req := MarkTimeRequest{
		Type:      "saida",
		Latitude:  floatPtr(38.7223),
		Longitude: floatPtr(-9.1393),
		Address:   nil,
	}

	assert.NoError(t, req.Validate())
}

func TestListMarkingsFilter_Validate(t *testing.T) {
	badType := "pausa"
	badDate := "03-2025-01"
	goodDate := "2025-03-01"

	filter := ListMarkingsFilter{Type: &badType, StartDate: &badDate}
	err := filter.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	details := errs.ToMap()
	assert.Contains(t, details, "type")
	assert.Contains(t, details, "start_date")

	okType := "entrada"
	filter = ListMarkingsFilter{Type: &okType, StartDate: &goodDate}
	assert.NoError(t, filter.Validate())
}
