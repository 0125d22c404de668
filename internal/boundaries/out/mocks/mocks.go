package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/bnema/cronfile/internal/boundaries/out"
)

// MockCrontabStore is a mock implementation of out.CrontabStore
type MockCrontabStore struct {
	mock.Mock
}

func (m *MockCrontabStore) ReadLines(ctx context.Context, path string) ([]out.SourceLine, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]out.SourceLine), args.Error(1)
}

func (m *MockCrontabStore) Write(ctx context.Context, path, content string) error {
	args := m.Called(ctx, path, content)
	return args.Error(0)
}

func (m *MockCrontabStore) ReadFile(ctx context.Context, path string) ([]byte, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockFileProber is a mock implementation of out.FileProber
type MockFileProber struct {
	mock.Mock
}

func (m *MockFileProber) Probe(path string) (out.FileStat, bool, error) {
	args := m.Called(path)
	return args.Get(0).(out.FileStat), args.Bool(1), args.Error(2)
}

// MockEnvFile is a mock implementation of out.EnvFile
type MockEnvFile struct {
	mock.Mock
}

func (m *MockEnvFile) Read(ctx context.Context, path string) (map[string]string, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockEnvFile) Write(ctx context.Context, path string, vars map[string]string) error {
	args := m.Called(ctx, path, vars)
	return args.Error(0)
}

// MockFileWatcher is a mock implementation of out.FileWatcher
type MockFileWatcher struct {
	mock.Mock
}

func (m *MockFileWatcher) Watch(ctx context.Context, path string, onChange func()) error {
	args := m.Called(ctx, path, onChange)
	return args.Error(0)
}

// MockScheduleChecker is a mock implementation of out.ScheduleChecker
type MockScheduleChecker struct {
	mock.Mock
}

func (m *MockScheduleChecker) Check(expression string) error {
	args := m.Called(expression)
	return args.Error(0)
}

func (m *MockScheduleChecker) Next(expression string, after time.Time) (time.Time, bool, error) {
	args := m.Called(expression, after)
	return args.Get(0).(time.Time), args.Bool(1), args.Error(2)
}
