package secrethub_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jshobe/secrethub-go/pkg/secrethub"
	"github.com/jshobe/secrethub-go/pkg/secrethub/memlib"
)

func TestResolveEnv(t *testing.T) {
	c, lib := newMockClient(t)
	lib.On("ResolveEnv", testHandle, mock.Anything).Return(`{"TEST_KEY":"SUCCESS"}`).Once()

	env, err := c.ResolveEnv()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"TEST_KEY": "SUCCESS"}, env)
}

func TestResolveEnvMalformedPayload(t *testing.T) {
	c, lib := newMockClient(t)
	lib.On("ResolveEnv", testHandle, mock.Anything).Return(`{"TEST_KEY":}`).Once()

	env, err := c.ResolveEnv()
	assert.Nil(t, env)
	require.Error(t, err)
	assert.ErrorIs(t, err, secrethub.ErrMalformedEnvironment)

	var envErr *secrethub.EnvironmentError
	require.ErrorAs(t, err, &envErr)
	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)

	var nerr *secrethub.NativeError
	assert.NotErrorAs(t, err, &nerr)
}

func TestResolveEnvRejectsNonStringValues(t *testing.T) {
	c, lib := newMockClient(t)
	lib.On("ResolveEnv", testHandle, mock.Anything).Return(`{"PORT":8080}`).Once()

	_, err := c.ResolveEnv()
	var typeErr *json.UnmarshalTypeError
	assert.ErrorAs(t, err, &typeErr)
	assert.ErrorIs(t, err, secrethub.ErrMalformedEnvironment)
}

func TestResolveEnvNullPayload(t *testing.T) {
	c, lib := newMockClient(t)
	lib.On("ResolveEnv", testHandle, mock.Anything).Return(`null`).Once()

	env, err := c.ResolveEnv()
	require.NoError(t, err)
	assert.NotNil(t, env)
	assert.Empty(t, env)
}

func TestResolveEnvNativeFailureIsNotDecodeFailure(t *testing.T) {
	c, lib := newMockClient(t)
	lib.On("ResolveEnv", testHandle, mock.Anything).
		Run(setError(1, "cannot find secret")).
		Return(`{"TEST_KEY":}`).
		Once()

	_, err := c.ResolveEnv()
	assert.EqualError(t, err, "cannot find secret")
	assert.NotErrorIs(t, err, secrethub.ErrMalformedEnvironment)
}

func TestExportEnv(t *testing.T) {
	const key = "SECRETHUB_GO_TEST_EXPORT"
	t.Setenv(key, "secrethub://"+testPath)

	lib := memlib.New(memlib.WithEnviron(func() []string {
		return []string{key + "=" + os.Getenv(key)}
	}))
	c, err := secrethub.Open(secrethub.Config{Library: lib})
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Write(testPath, "SUCCESS"))
	require.NoError(t, c.ExportEnv())
	assert.Equal(t, "SUCCESS", os.Getenv(key))
}

func TestEnviron(t *testing.T) {
	got := secrethub.Environ(map[string]string{"B": "2", "A": "1=1"})
	assert.Equal(t, []string{"A=1=1", "B=2"}, got)
}
