package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type mockParser struct {
	parseFunc func(data []byte, target any, path string) error
}

func (m *mockParser) Parse(data []byte, target any, path string) error {
	return m.parseFunc(data, target, path)
}

type mockDataFetcher struct {
	fetchFunc func() ([]byte, error)
}

func (m *mockDataFetcher) Fetch() ([]byte, error) {
	return m.fetchFunc()
}

// dataConfig mirrors the shape of a behavior configuration.
type dataConfig struct {
	Attribute string
	Codec     string
	err       error
	calls     []string
}

func (c *dataConfig) SetDefaults() bool {
	c.calls = append(c.calls, "defaults")

	if c.Codec == "" {
		c.Codec = "json"

		return true
	}

	return false
}

func (c *dataConfig) Validate() error {
	c.calls = append(c.calls, "validate")

	return c.err
}

type plainConfig struct {
	Attribute string
}

func fetcherOf(data string) *mockDataFetcher {
	return &mockDataFetcher{
		fetchFunc: func() ([]byte, error) {
			return []byte(data), nil
		},
	}
}

func parserSetting(attribute string) *mockParser {
	return &mockParser{
		parseFunc: func(_ []byte, target any, _ string) error {
			switch cfg := target.(type) {
			case *dataConfig:
				cfg.Attribute = attribute
			case *plainConfig:
				cfg.Attribute = attribute
			default:
				return errors.New("invalid target type")
			}

			return nil
		},
	}
}

func TestProvider_Success(t *testing.T) {
	t.Parallel()

	target := &plainConfig{}

	var gotPath string

	parser := &mockParser{
		parseFunc: func(data []byte, target any, path string) error {
			gotPath = path
			target.(*plainConfig).Attribute = string(data) //nolint:forcetypeassert // test target

			return nil
		},
	}

	result, err := Provider(target, "behaviors.hotel")(parser, fetcherOf("hotel_data"))
	require.NoError(t, err)
	require.Same(t, target, result)
	require.Equal(t, "hotel_data", result.Attribute)
	require.Equal(t, "behaviors.hotel", gotPath)
}

func TestProvider_DefaultsBeforeValidation(t *testing.T) {
	t.Parallel()

	target := &dataConfig{}

	result, err := Provider(target, "behaviors.hotel")(parserSetting("hotel_data"), fetcherOf("data"))
	require.NoError(t, err)
	require.Equal(t, []string{"defaults", "validate"}, result.calls)
	require.Equal(t, "json", result.Codec)
}

func TestProvider_Errors(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("fetch failed")
	parseErr := errors.New("parse failed")
	validationErr := errors.New("validation failed")

	tests := []struct {
		name      string
		fetchFunc func() ([]byte, error)
		parseFunc func(data []byte, target any, path string) error
		targetErr error
		wantErr   error
	}{
		{
			name: "fetch error",
			fetchFunc: func() ([]byte, error) {
				return nil, fetchErr
			},
			parseFunc: func(_ []byte, _ any, _ string) error {
				return nil
			},
			wantErr: fetchErr,
		},
		{
			name: "parse error",
			fetchFunc: func() ([]byte, error) {
				return []byte("data"), nil
			},
			parseFunc: func(_ []byte, _ any, _ string) error {
				return parseErr
			},
			wantErr: parseErr,
		},
		{
			name: "validation error",
			fetchFunc: func() ([]byte, error) {
				return []byte("data"), nil
			},
			parseFunc: func(_ []byte, _ any, _ string) error {
				return nil
			},
			targetErr: validationErr,
			wantErr:   validationErr,
		},
	}

	for _, testInfo := range tests {
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			target := &dataConfig{err: testInfo.targetErr}
			parser := &mockParser{parseFunc: testInfo.parseFunc}
			fetcher := &mockDataFetcher{fetchFunc: testInfo.fetchFunc}

			result, err := Provider(target, "behaviors.hotel")(parser, fetcher)
			require.Nil(t, result)
			require.ErrorIs(t, err, testInfo.wantErr)
		})
	}
}

func TestBytes_FetchReturnsCopy(t *testing.T) {
	t.Parallel()

	data := Bytes("attribute: hotel_data")

	fetched, err := data.Fetch()
	require.NoError(t, err)
	require.Equal(t, []byte("attribute: hotel_data"), fetched)

	fetched[0] = 'X'
	require.Equal(t, Bytes("attribute: hotel_data"), data)
}
