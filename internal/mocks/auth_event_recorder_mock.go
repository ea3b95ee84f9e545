// Code generated by MockGen. DO NOT EDIT.
// Source: github.com/socialnet-labs/ui-api/internal/ports (interfaces: AuthEventRecorder)
//
// Generated by this command:
//
//	mockgen -package=mocks -destination=auth_event_recorder_mock.go github.com/socialnet-labs/ui-api/internal/ports AuthEventRecorder
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"

	audit "github.com/socialnet-labs/ui-api/internal/domain/audit"
	gomock "go.uber.org/mock/gomock"
)

// MockAuthEventRecorder is a mock of AuthEventRecorder interface.
type MockAuthEventRecorder struct {
	ctrl     *gomock.Controller
	recorder *MockAuthEventRecorderMockRecorder
	isgomock struct{}
}

// MockAuthEventRecorderMockRecorder is the mock recorder for MockAuthEventRecorder.
type MockAuthEventRecorderMockRecorder struct {
	mock *MockAuthEventRecorder
}

// NewMockAuthEventRecorder creates a new mock instance.
func NewMockAuthEventRecorder(ctrl *gomock.Controller) *MockAuthEventRecorder {
	mock := &MockAuthEventRecorder{ctrl: ctrl}
	mock.recorder = &MockAuthEventRecorderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAuthEventRecorder) EXPECT() *MockAuthEventRecorderMockRecorder {
	return m.recorder
}

// CountsByOutcome mocks base method.
func (m *MockAuthEventRecorder) CountsByOutcome(ctx context.Context) (map[audit.Outcome]int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountsByOutcome", ctx)
	ret0, _ := ret[0].(map[audit.Outcome]int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountsByOutcome indicates an expected call of CountsByOutcome.
func (mr *MockAuthEventRecorderMockRecorder) CountsByOutcome(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountsByOutcome", reflect.TypeOf((*MockAuthEventRecorder)(nil).CountsByOutcome), ctx)
}

// List mocks base method.
func (m *MockAuthEventRecorder) List(ctx context.Context, filter audit.Filter) (audit.Page, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, filter)
	ret0, _ := ret[0].(audit.Page)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockAuthEventRecorderMockRecorder) List(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockAuthEventRecorder)(nil).List), ctx, filter)
}

// Recent mocks base method.
func (m *MockAuthEventRecorder) Recent(ctx context.Context, limit int) ([]audit.AuthEvent, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Recent", ctx, limit)
	ret0, _ := ret[0].([]audit.AuthEvent)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Recent indicates an expected call of Recent.
func (mr *MockAuthEventRecorderMockRecorder) Recent(ctx, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Recent", reflect.TypeOf((*MockAuthEventRecorder)(nil).Recent), ctx, limit)
}

// Record mocks base method.
func (m *MockAuthEventRecorder) Record(ctx context.Context, event audit.AuthEvent) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Record", ctx, event)
	ret0, _ := ret[0].(error)
	return ret0
}

// Record indicates an expected call of Record.
func (mr *MockAuthEventRecorderMockRecorder) Record(ctx, event any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Record", reflect.TypeOf((*MockAuthEventRecorder)(nil).Record), ctx, event)
}
