// Code generated by MockGen. DO NOT EDIT.
// Source: github.com/socialnet-labs/ui-api/internal/ports (interfaces: BackendHandle)
//
// Generated by this command:
//
//	mockgen -package=mocks -destination=backend_handle_mock.go github.com/socialnet-labs/ui-api/internal/ports BackendHandle
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	json "encoding/json"
	reflect "reflect"

	profile "github.com/socialnet-labs/ui-api/internal/domain/profile"
	social "github.com/socialnet-labs/ui-api/internal/domain/social"
	ports "github.com/socialnet-labs/ui-api/internal/ports"
	gomock "go.uber.org/mock/gomock"
)

// MockBackendHandle is a mock of BackendHandle interface.
type MockBackendHandle struct {
	ctrl     *gomock.Controller
	recorder *MockBackendHandleMockRecorder
	isgomock struct{}
}

// MockBackendHandleMockRecorder is the mock recorder for MockBackendHandle.
type MockBackendHandleMockRecorder struct {
	mock *MockBackendHandle
}

// NewMockBackendHandle creates a new mock instance.
func NewMockBackendHandle(ctrl *gomock.Controller) *MockBackendHandle {
	mock := &MockBackendHandle{ctrl: ctrl}
	mock.recorder = &MockBackendHandleMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBackendHandle) EXPECT() *MockBackendHandleMockRecorder {
	return m.recorder
}

// AdminDeleteUser mocks base method.
func (m *MockBackendHandle) AdminDeleteUser(ctx context.Context, principal string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AdminDeleteUser", ctx, principal)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AdminDeleteUser indicates an expected call of AdminDeleteUser.
func (mr *MockBackendHandleMockRecorder) AdminDeleteUser(ctx, principal any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AdminDeleteUser", reflect.TypeOf((*MockBackendHandle)(nil).AdminDeleteUser), ctx, principal)
}

// AdminDemoteUser mocks base method.
func (m *MockBackendHandle) AdminDemoteUser(ctx context.Context, principal string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AdminDemoteUser", ctx, principal)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AdminDemoteUser indicates an expected call of AdminDemoteUser.
func (mr *MockBackendHandleMockRecorder) AdminDemoteUser(ctx, principal any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AdminDemoteUser", reflect.TypeOf((*MockBackendHandle)(nil).AdminDemoteUser), ctx, principal)
}

// AdminGetRecentUsers mocks base method.
func (m *MockBackendHandle) AdminGetRecentUsers(ctx context.Context, limit int) ([]social.DirectoryUser, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AdminGetRecentUsers", ctx, limit)
	ret0, _ := ret[0].([]social.DirectoryUser)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AdminGetRecentUsers indicates an expected call of AdminGetRecentUsers.
func (mr *MockBackendHandleMockRecorder) AdminGetRecentUsers(ctx, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AdminGetRecentUsers", reflect.TypeOf((*MockBackendHandle)(nil).AdminGetRecentUsers), ctx, limit)
}

// AdminGetStats mocks base method.
func (m *MockBackendHandle) AdminGetStats(ctx context.Context) (social.AdminStats, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AdminGetStats", ctx)
	ret0, _ := ret[0].(social.AdminStats)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AdminGetStats indicates an expected call of AdminGetStats.
func (mr *MockBackendHandleMockRecorder) AdminGetStats(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AdminGetStats", reflect.TypeOf((*MockBackendHandle)(nil).AdminGetStats), ctx)
}

// AdminPromoteUser mocks base method.
func (m *MockBackendHandle) AdminPromoteUser(ctx context.Context, principal string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AdminPromoteUser", ctx, principal)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AdminPromoteUser indicates an expected call of AdminPromoteUser.
func (mr *MockBackendHandleMockRecorder) AdminPromoteUser(ctx, principal any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AdminPromoteUser", reflect.TypeOf((*MockBackendHandle)(nil).AdminPromoteUser), ctx, principal)
}

// CreatePost mocks base method.
func (m *MockBackendHandle) CreatePost(ctx context.Context, in social.NewPost) (social.Post, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreatePost", ctx, in)
	ret0, _ := ret[0].(social.Post)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreatePost indicates an expected call of CreatePost.
func (mr *MockBackendHandleMockRecorder) CreatePost(ctx, in any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreatePost", reflect.TypeOf((*MockBackendHandle)(nil).CreatePost), ctx, in)
}

// CreateUser mocks base method.
func (m *MockBackendHandle) CreateUser(ctx context.Context, in ports.CreateProfileInput) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateUser", ctx, in)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateUser indicates an expected call of CreateUser.
func (mr *MockBackendHandleMockRecorder) CreateUser(ctx, in any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateUser", reflect.TypeOf((*MockBackendHandle)(nil).CreateUser), ctx, in)
}

// DeleteUser mocks base method.
func (m *MockBackendHandle) DeleteUser(ctx context.Context) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteUser", ctx)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteUser indicates an expected call of DeleteUser.
func (mr *MockBackendHandleMockRecorder) DeleteUser(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteUser", reflect.TypeOf((*MockBackendHandle)(nil).DeleteUser), ctx)
}

// GetAllPosts mocks base method.
func (m *MockBackendHandle) GetAllPosts(ctx context.Context) ([]social.Post, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAllPosts", ctx)
	ret0, _ := ret[0].([]social.Post)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAllPosts indicates an expected call of GetAllPosts.
func (mr *MockBackendHandleMockRecorder) GetAllPosts(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAllPosts", reflect.TypeOf((*MockBackendHandle)(nil).GetAllPosts), ctx)
}

// GetAllUsers mocks base method.
func (m *MockBackendHandle) GetAllUsers(ctx context.Context) ([]profile.Profile, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAllUsers", ctx)
	ret0, _ := ret[0].([]profile.Profile)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAllUsers indicates an expected call of GetAllUsers.
func (mr *MockBackendHandleMockRecorder) GetAllUsers(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAllUsers", reflect.TypeOf((*MockBackendHandle)(nil).GetAllUsers), ctx)
}

// GetUser mocks base method.
func (m *MockBackendHandle) GetUser(ctx context.Context, principal string) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUser", ctx, principal)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUser indicates an expected call of GetUser.
func (mr *MockBackendHandleMockRecorder) GetUser(ctx, principal any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUser", reflect.TypeOf((*MockBackendHandle)(nil).GetUser), ctx, principal)
}

// GetUserFeed mocks base method.
func (m *MockBackendHandle) GetUserFeed(ctx context.Context, principal string) ([]social.Post, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUserFeed", ctx, principal)
	ret0, _ := ret[0].([]social.Post)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUserFeed indicates an expected call of GetUserFeed.
func (mr *MockBackendHandleMockRecorder) GetUserFeed(ctx, principal any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUserFeed", reflect.TypeOf((*MockBackendHandle)(nil).GetUserFeed), ctx, principal)
}

// IsCallerAdmin mocks base method.
func (m *MockBackendHandle) IsCallerAdmin(ctx context.Context) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsCallerAdmin", ctx)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IsCallerAdmin indicates an expected call of IsCallerAdmin.
func (mr *MockBackendHandleMockRecorder) IsCallerAdmin(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsCallerAdmin", reflect.TypeOf((*MockBackendHandle)(nil).IsCallerAdmin), ctx)
}

// Kind mocks base method.
func (m *MockBackendHandle) Kind() ports.HandleKind {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Kind")
	ret0, _ := ret[0].(ports.HandleKind)
	return ret0
}

// Kind indicates an expected call of Kind.
func (mr *MockBackendHandleMockRecorder) Kind() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Kind", reflect.TypeOf((*MockBackendHandle)(nil).Kind))
}

// LikePost mocks base method.
func (m *MockBackendHandle) LikePost(ctx context.Context, postID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LikePost", ctx, postID)
	ret0, _ := ret[0].(error)
	return ret0
}

// LikePost indicates an expected call of LikePost.
func (mr *MockBackendHandleMockRecorder) LikePost(ctx, postID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LikePost", reflect.TypeOf((*MockBackendHandle)(nil).LikePost), ctx, postID)
}

// UnlikePost mocks base method.
func (m *MockBackendHandle) UnlikePost(ctx context.Context, postID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UnlikePost", ctx, postID)
	ret0, _ := ret[0].(error)
	return ret0
}

// UnlikePost indicates an expected call of UnlikePost.
func (mr *MockBackendHandleMockRecorder) UnlikePost(ctx, postID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UnlikePost", reflect.TypeOf((*MockBackendHandle)(nil).UnlikePost), ctx, postID)
}

// UpdateUser mocks base method.
func (m *MockBackendHandle) UpdateUser(ctx context.Context, in ports.UpdateProfileInput) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateUser", ctx, in)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateUser indicates an expected call of UpdateUser.
func (mr *MockBackendHandleMockRecorder) UpdateUser(ctx, in any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateUser", reflect.TypeOf((*MockBackendHandle)(nil).UpdateUser), ctx, in)
}
