// Code generated by MockGen. DO NOT EDIT.
// Source: github.com/socialnet-labs/ui-api/internal/ports (interfaces: HandleFactory)
//
// Generated by this command:
//
//	mockgen -package=mocks -destination=handle_factory_mock.go github.com/socialnet-labs/ui-api/internal/ports HandleFactory
//

// Package mocks is a generated GoMock package.
package mocks

import (
	reflect "reflect"

	auth "github.com/socialnet-labs/ui-api/internal/domain/auth"
	ports "github.com/socialnet-labs/ui-api/internal/ports"
	gomock "go.uber.org/mock/gomock"
)

// MockHandleFactory is a mock of HandleFactory interface.
type MockHandleFactory struct {
	ctrl     *gomock.Controller
	recorder *MockHandleFactoryMockRecorder
	isgomock struct{}
}

// MockHandleFactoryMockRecorder is the mock recorder for MockHandleFactory.
type MockHandleFactoryMockRecorder struct {
	mock *MockHandleFactory
}

// NewMockHandleFactory creates a new mock instance.
func NewMockHandleFactory(ctrl *gomock.Controller) *MockHandleFactory {
	mock := &MockHandleFactory{ctrl: ctrl}
	mock.recorder = &MockHandleFactoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockHandleFactory) EXPECT() *MockHandleFactoryMockRecorder {
	return m.recorder
}

// Anonymous mocks base method.
func (m *MockHandleFactory) Anonymous() ports.BackendHandle {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Anonymous")
	ret0, _ := ret[0].(ports.BackendHandle)
	return ret0
}

// Anonymous indicates an expected call of Anonymous.
func (mr *MockHandleFactoryMockRecorder) Anonymous() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Anonymous", reflect.TypeOf((*MockHandleFactory)(nil).Anonymous))
}

// ForIdentity mocks base method.
func (m *MockHandleFactory) ForIdentity(identity auth.Identity) (ports.BackendHandle, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ForIdentity", identity)
	ret0, _ := ret[0].(ports.BackendHandle)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ForIdentity indicates an expected call of ForIdentity.
func (mr *MockHandleFactoryMockRecorder) ForIdentity(identity any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ForIdentity", reflect.TypeOf((*MockHandleFactory)(nil).ForIdentity), identity)
}
