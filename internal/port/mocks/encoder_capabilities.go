package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"
)

// EncoderCapabilitiesMock is a mock implementation of port.EncoderCapabilities.
type EncoderCapabilitiesMock struct {
	mock.Mock
}

type EncoderCapabilitiesMock_Expecter struct {
	mock *mock.Mock
}

func (_m *EncoderCapabilitiesMock) EXPECT() *EncoderCapabilitiesMock_Expecter {
	return &EncoderCapabilitiesMock_Expecter{mock: &_m.Mock}
}

// HasEncoder provides a mock function with given fields: ctx, codec
func (_m *EncoderCapabilitiesMock) HasEncoder(ctx context.Context, codec string) bool {
	ret := _m.Called(ctx, codec)

	if len(ret) == 0 {
		panic("no return value specified for HasEncoder")
	}

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, string) bool); ok {
		r0 = rf(ctx, codec)
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}

type EncoderCapabilitiesMock_HasEncoder_Call struct {
	*mock.Call
}

// HasEncoder is a helper method to define mock.On call
func (_e *EncoderCapabilitiesMock_Expecter) HasEncoder(ctx interface{}, codec interface{}) *EncoderCapabilitiesMock_HasEncoder_Call {
	return &EncoderCapabilitiesMock_HasEncoder_Call{Call: _e.mock.On("HasEncoder", ctx, codec)}
}

func (_c *EncoderCapabilitiesMock_HasEncoder_Call) Run(run func(ctx context.Context, codec string)) *EncoderCapabilitiesMock_HasEncoder_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *EncoderCapabilitiesMock_HasEncoder_Call) Return(available bool) *EncoderCapabilitiesMock_HasEncoder_Call {
	_c.Call.Return(available)
	return _c
}

// NewEncoderCapabilitiesMock creates a new instance of EncoderCapabilitiesMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewEncoderCapabilitiesMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *EncoderCapabilitiesMock {
	m := &EncoderCapabilitiesMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
