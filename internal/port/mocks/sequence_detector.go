package mocks

import (
	domain "github.com/sadalchemist/alchemist/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// SequenceDetectorMock is a mock implementation of port.SequenceDetector.
type SequenceDetectorMock struct {
	mock.Mock
}

type SequenceDetectorMock_Expecter struct {
	mock *mock.Mock
}

func (_m *SequenceDetectorMock) EXPECT() *SequenceDetectorMock_Expecter {
	return &SequenceDetectorMock_Expecter{mock: &_m.Mock}
}

// Detect provides a mock function with given fields: dir
func (_m *SequenceDetectorMock) Detect(dir string) (domain.Sequence, error) {
	ret := _m.Called(dir)

	if len(ret) == 0 {
		panic("no return value specified for Detect")
	}

	var r0 domain.Sequence
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (domain.Sequence, error)); ok {
		return rf(dir)
	}
	if rf, ok := ret.Get(0).(func(string) domain.Sequence); ok {
		r0 = rf(dir)
	} else {
		r0 = ret.Get(0).(domain.Sequence)
	}
	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(dir)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

type SequenceDetectorMock_Detect_Call struct {
	*mock.Call
}

// Detect is a helper method to define mock.On call
func (_e *SequenceDetectorMock_Expecter) Detect(dir interface{}) *SequenceDetectorMock_Detect_Call {
	return &SequenceDetectorMock_Detect_Call{Call: _e.mock.On("Detect", dir)}
}

func (_c *SequenceDetectorMock_Detect_Call) Return(seq domain.Sequence, err error) *SequenceDetectorMock_Detect_Call {
	_c.Call.Return(seq, err)
	return _c
}

func (_c *SequenceDetectorMock_Detect_Call) RunAndReturn(run func(string) (domain.Sequence, error)) *SequenceDetectorMock_Detect_Call {
	_c.Call.Return(run)
	return _c
}

// NewSequenceDetectorMock creates a new instance of SequenceDetectorMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewSequenceDetectorMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *SequenceDetectorMock {
	m := &SequenceDetectorMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
