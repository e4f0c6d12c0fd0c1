package intake

import (
	"strings"
	"testing"

	"github.com/shenikar/sos_intake_service/internal/geotag"
	"github.com/shenikar/sos_intake_service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() Input {
	return Input{
		Severity:    models.SeverityOrange,
		Description: "Payment delay issue reported by intern",
	}
}

func TestValidate_Severity(t *testing.T) {
	for _, sev := range models.Severities() {
		in := validInput()
		in.Severity = sev
		_, err := Validate(in)
		assert.NoError(t, err, "severity %s", sev)
	}

	for _, sev := range []models.Severity{"", "red", "YELLOW", "RED "} {
		in := validInput()
		in.Severity = sev
		_, err := Validate(in)
		assert.ErrorIs(t, err, ErrInvalidSeverity, "severity %q", sev)
	}
}

func TestValidate_DescriptionBoundaries(t *testing.T) {
	cases := []struct {
		length int
		want   error
	}{
		{0, ErrDescriptionTooShort},
		{9, ErrDescriptionTooShort},
		{10, nil},
		{250, nil},
		{500, nil},
		{501, ErrDescriptionTooLong},
	}

	for _, tc := range cases {
		in := validInput()
		in.Description = strings.Repeat("a", tc.length)
		_, err := Validate(in)
		if tc.want == nil {
			assert.NoError(t, err, "length %d", tc.length)
			continue
		}
		assert.ErrorIs(t, err, tc.want, "length %d", tc.length)
	}
}

func TestValidate_DescriptionCountsCharacters(t *testing.T) {
	in := validInput()
	// 10 символов кириллицей, 20 байт
	in.Description = strings.Repeat("ж", 10)
	_, err := Validate(in)
	assert.NoError(t, err)

	in.Description = strings.Repeat("ж", 501)
	_, err = Validate(in)
	assert.ErrorIs(t, err, ErrDescriptionTooLong)
}

func TestValidate_FirstFailureWins(t *testing.T) {
	_, err := Validate(Input{Severity: "PURPLE", Description: "short"})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, CodeInvalidSeverity, vErr.Code)
}

func TestValidate_DropsOversizedEvidence(t *testing.T) {
	in := validInput()
	in.Evidence = []Attachment{
		{Filename: "exact.pdf", Size: 10_485_760},
		{Filename: "big.mp4", Size: 10_485_761},
		{Filename: "photo.jpg", Size: 2048},
	}

	report, err := Validate(in)

	require.NoError(t, err)
	require.Len(t, report.Accepted, 2)
	assert.Equal(t, "exact.pdf", report.Accepted[0].Filename)
	assert.Equal(t, "photo.jpg", report.Accepted[1].Filename)
	require.Len(t, report.Dropped, 1)
	assert.Equal(t, "big.mp4", report.Dropped[0].Filename)
	assert.Equal(t, 1, report.DroppedCount())
}

func TestValidate_Geotag(t *testing.T) {
	t.Run("kept when geotagged", func(t *testing.T) {
		in := validInput()
		in.GeoTagged = true
		in.Location = &geotag.Point{Latitude: 18.52, Longitude: 73.85}

		report, err := Validate(in)
		require.NoError(t, err)
		require.NotNil(t, report.Location)
		assert.NotEmpty(t, report.Location.Cell)
	})

	t.Run("capture failed", func(t *testing.T) {
		in := validInput()
		in.GeoTagged = true

		report, err := Validate(in)
		require.NoError(t, err)
		assert.True(t, report.GeoTagged)
		assert.Nil(t, report.Location)
	})

	t.Run("invalid coordinates degrade", func(t *testing.T) {
		in := validInput()
		in.GeoTagged = true
		in.Location = &geotag.Point{Latitude: 123, Longitude: 10}

		report, err := Validate(in)
		require.NoError(t, err)
		assert.Nil(t, report.Location)
	})

	t.Run("ignored without geotag flag", func(t *testing.T) {
		in := validInput()
		in.Location = &geotag.Point{Latitude: 18.52, Longitude: 73.85}

		report, err := Validate(in)
		require.NoError(t, err)
		assert.Nil(t, report.Location)
	})
}

func TestValidate_AnonymousStripsIdentity(t *testing.T) {
	in := validInput()
	in.Anonymous = true
	in.ReporterID = "student-42"
	in.ContactEmail = "intern@example.com"

	report, err := Validate(in)

	require.NoError(t, err)
	assert.True(t, report.Anonymous)
	assert.Empty(t, report.ReporterID)
	assert.Empty(t, report.ContactEmail)
}

func TestValidate_Idempotent(t *testing.T) {
	inputs := []Input{
		validInput(),
		{Severity: models.SeverityRed, Description: "short"},
		{Severity: "BLUE", Description: "long enough description"},
	}

	for _, in := range inputs {
		r1, err1 := Validate(in)
		r2, err2 := Validate(in)
		assert.Equal(t, err1, err2)
		assert.Equal(t, r1, r2)
	}
}
