package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"
)

// AudioProberMock is a mock implementation of port.AudioProber.
type AudioProberMock struct {
	mock.Mock
}

type AudioProberMock_Expecter struct {
	mock *mock.Mock
}

func (_m *AudioProberMock) EXPECT() *AudioProberMock_Expecter {
	return &AudioProberMock_Expecter{mock: &_m.Mock}
}

// HasAudioStream provides a mock function with given fields: ctx, path
func (_m *AudioProberMock) HasAudioStream(ctx context.Context, path string) bool {
	ret := _m.Called(ctx, path)

	if len(ret) == 0 {
		panic("no return value specified for HasAudioStream")
	}

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, string) bool); ok {
		r0 = rf(ctx, path)
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}

type AudioProberMock_HasAudioStream_Call struct {
	*mock.Call
}

// HasAudioStream is a helper method to define mock.On call
func (_e *AudioProberMock_Expecter) HasAudioStream(ctx interface{}, path interface{}) *AudioProberMock_HasAudioStream_Call {
	return &AudioProberMock_HasAudioStream_Call{Call: _e.mock.On("HasAudioStream", ctx, path)}
}

func (_c *AudioProberMock_HasAudioStream_Call) Return(hasAudio bool) *AudioProberMock_HasAudioStream_Call {
	_c.Call.Return(hasAudio)
	return _c
}

// NewAudioProberMock creates a new instance of AudioProberMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewAudioProberMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *AudioProberMock {
	m := &AudioProberMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
