package secrethub_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jshobe/secrethub-go/pkg/secrethub"
	"github.com/jshobe/secrethub-go/pkg/secrethub/native"
)

// mockLibrary is a testify mock of native.Library.
type mockLibrary struct {
	mock.Mock
}

var _ native.Library = (*mockLibrary)(nil)

func (m *mockLibrary) NewClient(errOut *native.ErrorSlot) native.Handle {
	args := m.Called(errOut)
	return args.Get(0).(native.Handle)
}

func (m *mockLibrary) DeleteClient(h native.Handle) {
	m.Called(h)
}

func (m *mockLibrary) Read(h native.Handle, path string, errOut *native.ErrorSlot) native.RawSecretVersion {
	args := m.Called(h, path, errOut)
	return args.Get(0).(native.RawSecretVersion)
}

func (m *mockLibrary) ReadString(h native.Handle, path string, errOut *native.ErrorSlot) string {
	args := m.Called(h, path, errOut)
	return args.String(0)
}

func (m *mockLibrary) Resolve(h native.Handle, ref string, errOut *native.ErrorSlot) string {
	args := m.Called(h, ref, errOut)
	return args.String(0)
}

func (m *mockLibrary) ResolveEnv(h native.Handle, errOut *native.ErrorSlot) string {
	args := m.Called(h, errOut)
	return args.String(0)
}

func (m *mockLibrary) Exists(h native.Handle, path string, errOut *native.ErrorSlot) bool {
	args := m.Called(h, path, errOut)
	return args.Bool(0)
}

func (m *mockLibrary) Remove(h native.Handle, path string, errOut *native.ErrorSlot) {
	m.Called(h, path, errOut)
}

func (m *mockLibrary) Write(h native.Handle, path, value string, errOut *native.ErrorSlot) {
	m.Called(h, path, value, errOut)
}

// setError returns a Run hook that writes msg into the error slot found at
// argument position idx.
func setError(idx int, msg string) func(mock.Arguments) {
	return func(args mock.Arguments) {
		args.Get(idx).(*native.ErrorSlot).Set(msg)
	}
}

const testHandle = native.Handle(1)

// newMockClient opens a Client on a fresh mock that expects exactly one
// new_Client call and, at cleanup, exactly one delete_Client call.
func newMockClient(t *testing.T) (*secrethub.Client, *mockLibrary) {
	t.Helper()
	lib := new(mockLibrary)
	lib.Test(t)
	lib.On("NewClient", mock.Anything).Return(testHandle).Once()
	lib.On("DeleteClient", testHandle).Return().Once()

	c, err := secrethub.Open(secrethub.Config{Library: lib})
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, c.Close())
		lib.AssertExpectations(t)
		lib.AssertNumberOfCalls(t, "DeleteClient", 1)
	})
	return c, lib
}
