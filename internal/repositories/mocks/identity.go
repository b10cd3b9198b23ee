// Code generated by MockGen. DO NOT EDIT.
// Source: tablepay/internal/client/identity (interfaces: IUserInfoStorage)

// Package mocks is a generated GoMock package.
package mocks

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
	identity "tablepay/internal/client/identity"
)

// MockIUserInfoStorage is a mock of IUserInfoStorage interface.
type MockIUserInfoStorage struct {
	ctrl     *gomock.Controller
	recorder *MockIUserInfoStorageMockRecorder
}

// MockIUserInfoStorageMockRecorder is the mock recorder for MockIUserInfoStorage.
type MockIUserInfoStorageMockRecorder struct {
	mock *MockIUserInfoStorage
}

// NewMockIUserInfoStorage creates a new mock instance.
func NewMockIUserInfoStorage(ctrl *gomock.Controller) *MockIUserInfoStorage {
	mock := &MockIUserInfoStorage{ctrl: ctrl}
	mock.recorder = &MockIUserInfoStorageMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIUserInfoStorage) EXPECT() *MockIUserInfoStorageMockRecorder {
	return m.recorder
}

// Get mocks base method.
func (m *MockIUserInfoStorage) Get() identity.UserInfo {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get")
	ret0, _ := ret[0].(identity.UserInfo)
	return ret0
}

// Get indicates an expected call of Get.
func (mr *MockIUserInfoStorageMockRecorder) Get() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockIUserInfoStorage)(nil).Get))
}

// Set mocks base method.
func (m *MockIUserInfoStorage) Set(arg0 identity.UserInfo) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Set", arg0)
}

// Set indicates an expected call of Set.
func (mr *MockIUserInfoStorageMockRecorder) Set(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Set", reflect.TypeOf((*MockIUserInfoStorage)(nil).Set), arg0)
}
