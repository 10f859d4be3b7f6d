package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func airportSchema() map[string]any {
	return Object(map[string]*Property{
		"origin":      String("Origin airport code."),
		"destination": String("Destination airport code."),
		"hour":        Integer("Departure hour.").Min(0).Max(23),
	}, "origin")
}

func TestObjectBuilder(t *testing.T) {
	raw := airportSchema()

	assert.Equal(t, "object", raw["type"])
	assert.Equal(t, []string{"origin"}, raw["required"])

	props := raw["properties"].(map[string]any)
	origin := props["origin"].(map[string]any)
	assert.Equal(t, "string", origin["type"])
	assert.Equal(t, "Origin airport code.", origin["description"])

	hour := props["hour"].(map[string]any)
	assert.Equal(t, "integer", hour["type"])
	assert.Equal(t, float64(0), hour["minimum"])
	assert.Equal(t, float64(23), hour["maximum"])
}

func TestObjectBuilder_NoRequired(t *testing.T) {
	raw := Object(map[string]*Property{"q": String("")})
	_, present := raw["required"]
	assert.False(t, present)
}

func TestCompileAndValidate(t *testing.T) {
	s, err := Compile(airportSchema())
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, airportSchema(), s.Raw())

	assert.NoError(t, s.Validate(map[string]any{"origin": "SFO"}))
	assert.NoError(t, s.Validate(map[string]any{
		"origin": "SFO", "destination": "JFK", "hour": float64(9),
	}))

	err = s.Validate(map[string]any{"destination": "JFK"})
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, err.Error(), "schema validation failed")

	assert.Error(t, s.Validate(map[string]any{"origin": float64(7)}))
	assert.Error(t, s.Validate(map[string]any{"origin": "SFO", "hour": float64(24)}))
}

func TestValidate_NestedObjectsAndArrays(t *testing.T) {
	s := MustCompile(Object(map[string]*Property{
		"legs": Array("Flight legs.", ObjectProp("One leg.", map[string]*Property{
			"origin": String(""),
			"price":  Number(""),
		}, "origin", "price")),
	}, "legs"))

	assert.NoError(t, s.Validate(map[string]any{
		"legs": []any{
			map[string]any{"origin": "SFO", "price": float64(320)},
		},
	}))
	assert.Error(t, s.Validate(map[string]any{
		"legs": []any{map[string]any{"origin": "SFO"}},
	}))
}

func TestValidate_Enum(t *testing.T) {
	s := MustCompile(Object(map[string]*Property{
		"frequency": String("").Enum("daily", "weekly"),
	}, "frequency"))

	assert.NoError(t, s.Validate(map[string]any{"frequency": "daily"}))
	assert.Error(t, s.Validate(map[string]any{"frequency": "hourly"}))
}

func TestNilSchemaAcceptsEverything(t *testing.T) {
	s, err := Compile(nil)
	require.NoError(t, err)
	require.Nil(t, s)

	assert.Nil(t, s.Raw())
	assert.NoError(t, s.Validate(nil))
	assert.NoError(t, s.Validate(map[string]any{"anything": true}))
}

func TestCompile_RejectsMalformedSchema(t *testing.T) {
	_, err := Compile(map[string]any{"type": 42})
	assert.Error(t, err)
}
