// Package mocks holds testify mocks for the port interfaces, written in the
// expecter style.
package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"
)

// ProcessRunnerMock is a mock implementation of port.ProcessRunner.
type ProcessRunnerMock struct {
	mock.Mock
}

type ProcessRunnerMock_Expecter struct {
	mock *mock.Mock
}

func (_m *ProcessRunnerMock) EXPECT() *ProcessRunnerMock_Expecter {
	return &ProcessRunnerMock_Expecter{mock: &_m.Mock}
}

// Run provides a mock function with given fields: ctx, name, args, onLine
func (_m *ProcessRunnerMock) Run(ctx context.Context, name string, args []string, onLine func(string)) (int, error) {
	ret := _m.Called(ctx, name, args, onLine)

	if len(ret) == 0 {
		panic("no return value specified for Run")
	}

	var r0 int
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, []string, func(string)) (int, error)); ok {
		return rf(ctx, name, args, onLine)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, []string, func(string)) int); ok {
		r0 = rf(ctx, name, args, onLine)
	} else {
		r0 = ret.Get(0).(int)
	}
	if rf, ok := ret.Get(1).(func(context.Context, string, []string, func(string)) error); ok {
		r1 = rf(ctx, name, args, onLine)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

type ProcessRunnerMock_Run_Call struct {
	*mock.Call
}

// Run is a helper method to define mock.On call
func (_e *ProcessRunnerMock_Expecter) Run(ctx interface{}, name interface{}, args interface{}, onLine interface{}) *ProcessRunnerMock_Run_Call {
	return &ProcessRunnerMock_Run_Call{Call: _e.mock.On("Run", ctx, name, args, onLine)}
}

func (_c *ProcessRunnerMock_Run_Call) Run(run func(ctx context.Context, name string, args []string, onLine func(string))) *ProcessRunnerMock_Run_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].([]string), args[3].(func(string)))
	})
	return _c
}

func (_c *ProcessRunnerMock_Run_Call) Return(exitCode int, err error) *ProcessRunnerMock_Run_Call {
	_c.Call.Return(exitCode, err)
	return _c
}

func (_c *ProcessRunnerMock_Run_Call) RunAndReturn(run func(context.Context, string, []string, func(string)) (int, error)) *ProcessRunnerMock_Run_Call {
	_c.Call.Return(run)
	return _c
}

// NewProcessRunnerMock creates a new instance of ProcessRunnerMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewProcessRunnerMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *ProcessRunnerMock {
	m := &ProcessRunnerMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
