// Package mocks provides mock implementations for testing the ui-api services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our port interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockHandle := mocks.NewMockBackendHandle(ctrl)
//	mockHandle.EXPECT().GetUser(gomock.Any(), gomock.Any()).Return(json.RawMessage(`[]`), nil)
package mocks

// Generate mock for BackendHandle interface from internal/ports.
// This creates MockBackendHandle with methods for all BackendHandle interface methods:
// Kind, GetUser, CreateUser, UpdateUser, DeleteUser, GetAllUsers, IsCallerAdmin,
// GetUserFeed, GetAllPosts, CreatePost, LikePost, UnlikePost,
// AdminGetStats, AdminGetRecentUsers, AdminPromoteUser, AdminDemoteUser, AdminDeleteUser
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=backend_handle_mock.go github.com/socialnet-labs/ui-api/internal/ports BackendHandle

// Generate mock for HandleFactory interface from internal/ports.
// This creates MockHandleFactory with methods for all HandleFactory interface methods:
// Anonymous, ForIdentity
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=handle_factory_mock.go github.com/socialnet-labs/ui-api/internal/ports HandleFactory

// Generate mock for AuthEventRecorder interface from internal/ports.
// This creates MockAuthEventRecorder with methods for all AuthEventRecorder interface methods:
// Record, Recent, CountsByOutcome
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=auth_event_recorder_mock.go github.com/socialnet-labs/ui-api/internal/ports AuthEventRecorder
