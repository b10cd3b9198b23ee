// Code generated by MockGen. DO NOT EDIT.
// Source: tablepay/internal/client/storage (interfaces: IKeyValueStorage)

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
)

// MockIKeyValueStorage is a mock of IKeyValueStorage interface.
type MockIKeyValueStorage struct {
	ctrl     *gomock.Controller
	recorder *MockIKeyValueStorageMockRecorder
}

// MockIKeyValueStorageMockRecorder is the mock recorder for MockIKeyValueStorage.
type MockIKeyValueStorageMockRecorder struct {
	mock *MockIKeyValueStorage
}

// NewMockIKeyValueStorage creates a new mock instance.
func NewMockIKeyValueStorage(ctrl *gomock.Controller) *MockIKeyValueStorage {
	mock := &MockIKeyValueStorage{ctrl: ctrl}
	mock.recorder = &MockIKeyValueStorageMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIKeyValueStorage) EXPECT() *MockIKeyValueStorageMockRecorder {
	return m.recorder
}

// Delete mocks base method.
func (m *MockIKeyValueStorage) Delete(arg0 context.Context, arg1 string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", arg0, arg1)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockIKeyValueStorageMockRecorder) Delete(arg0, arg1 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockIKeyValueStorage)(nil).Delete), arg0, arg1)
}

// Get mocks base method.
func (m *MockIKeyValueStorage) Get(arg0 context.Context, arg1 string) (string, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", arg0, arg1)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// Get indicates an expected call of Get.
func (mr *MockIKeyValueStorageMockRecorder) Get(arg0, arg1 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockIKeyValueStorage)(nil).Get), arg0, arg1)
}

// Set mocks base method.
func (m *MockIKeyValueStorage) Set(arg0 context.Context, arg1, arg2 string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Set", arg0, arg1, arg2)
	ret0, _ := ret[0].(error)
	return ret0
}

// Set indicates an expected call of Set.
func (mr *MockIKeyValueStorageMockRecorder) Set(arg0, arg1, arg2 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Set", reflect.TypeOf((*MockIKeyValueStorage)(nil).Set), arg0, arg1, arg2)
}
