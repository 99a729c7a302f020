// Package vectormock provides a gomock test double for vector.Vector.
//
// The mock follows mockgen's layout, but it is maintained by hand:
// mockgen of github.com/golang/mock v1.6.0 can't generate mocks for generic interfaces.
// Keep it in sync with the methods of vector.Vector.
package vectormock

import (
	"reflect"

	"github.com/golang/mock/gomock"
	"go.llib.dev/vectorkit/port/vector"
)

// MockVector is a mock of the vector.Vector interface.
type MockVector[S, A any] struct {
	ctrl     *gomock.Controller
	recorder *MockVectorMockRecorder[S, A]
}

// MockVectorMockRecorder is the mock recorder for MockVector.
type MockVectorMockRecorder[S, A any] struct {
	mock *MockVector[S, A]
}

var _ vector.Vector[any, any] = (*MockVector[any, any])(nil)

// NewMockVector creates a new mock instance.
func NewMockVector[S, A any](ctrl *gomock.Controller) *MockVector[S, A] {
	mock := &MockVector[S, A]{ctrl: ctrl}
	mock.recorder = &MockVectorMockRecorder[S, A]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockVector[S, A]) EXPECT() *MockVectorMockRecorder[S, A] {
	return m.recorder
}

// Len mocks base method.
func (m *MockVector[S, A]) Len() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Len")
	ret0, _ := ret[0].(int)
	return ret0
}

// Len indicates an expected call of Len.
func (mr *MockVectorMockRecorder[S, A]) Len() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Len", reflect.TypeOf((*MockVector[S, A])(nil).Len))
}

// IsEmpty mocks base method.
func (m *MockVector[S, A]) IsEmpty() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsEmpty")
	ret0, _ := ret[0].(bool)
	return ret0
}

// IsEmpty indicates an expected call of IsEmpty.
func (mr *MockVectorMockRecorder[S, A]) IsEmpty() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsEmpty", reflect.TypeOf((*MockVector[S, A])(nil).IsEmpty))
}

// Get mocks base method.
func (m *MockVector[S, A]) Get(index int) (S, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", index)
	ret0, _ := ret[0].(S)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockVectorMockRecorder[S, A]) Get(index any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockVector[S, A])(nil).Get), index)
}

// GetUnchecked mocks base method.
func (m *MockVector[S, A]) GetUnchecked(index int) S {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUnchecked", index)
	ret0, _ := ret[0].(S)
	return ret0
}

// GetUnchecked indicates an expected call of GetUnchecked.
func (mr *MockVectorMockRecorder[S, A]) GetUnchecked(index any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUnchecked", reflect.TypeOf((*MockVector[S, A])(nil).GetUnchecked), index)
}

// Cap mocks base method.
func (m *MockVector[S, A]) Cap() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Cap")
	ret0, _ := ret[0].(int)
	return ret0
}

// Cap indicates an expected call of Cap.
func (mr *MockVectorMockRecorder[S, A]) Cap() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Cap", reflect.TypeOf((*MockVector[S, A])(nil).Cap))
}

// Reserve mocks base method.
func (m *MockVector[S, A]) Reserve(additional int) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Reserve", additional)
}

// Reserve indicates an expected call of Reserve.
func (mr *MockVectorMockRecorder[S, A]) Reserve(additional any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Reserve", reflect.TypeOf((*MockVector[S, A])(nil).Reserve), additional)
}

// ShrinkToFit mocks base method.
func (m *MockVector[S, A]) ShrinkToFit() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ShrinkToFit")
}

// ShrinkToFit indicates an expected call of ShrinkToFit.
func (mr *MockVectorMockRecorder[S, A]) ShrinkToFit() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ShrinkToFit", reflect.TypeOf((*MockVector[S, A])(nil).ShrinkToFit))
}

// Clear mocks base method.
func (m *MockVector[S, A]) Clear() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Clear")
}

// Clear indicates an expected call of Clear.
func (mr *MockVectorMockRecorder[S, A]) Clear() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Clear", reflect.TypeOf((*MockVector[S, A])(nil).Clear))
}

// Push mocks base method.
func (m *MockVector[S, A]) Push(v A) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Push", v)
}

// Push indicates an expected call of Push.
func (mr *MockVectorMockRecorder[S, A]) Push(v any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Push", reflect.TypeOf((*MockVector[S, A])(nil).Push), v)
}

// Insert mocks base method.
func (m *MockVector[S, A]) Insert(index int, v A) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Insert", index, v)
	ret0, _ := ret[0].(error)
	return ret0
}

// Insert indicates an expected call of Insert.
func (mr *MockVectorMockRecorder[S, A]) Insert(index any, v any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Insert", reflect.TypeOf((*MockVector[S, A])(nil).Insert), index, v)
}

// Remove mocks base method.
func (m *MockVector[S, A]) Remove(index int) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Remove", index)
	ret0, _ := ret[0].(error)
	return ret0
}

// Remove indicates an expected call of Remove.
func (mr *MockVectorMockRecorder[S, A]) Remove(index any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Remove", reflect.TypeOf((*MockVector[S, A])(nil).Remove), index)
}

// Swap mocks base method.
func (m *MockVector[S, A]) Swap(i int, j int) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Swap", i, j)
	ret0, _ := ret[0].(error)
	return ret0
}

// Swap indicates an expected call of Swap.
func (mr *MockVectorMockRecorder[S, A]) Swap(i any, j any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Swap", reflect.TypeOf((*MockVector[S, A])(nil).Swap), i, j)
}

// Set mocks base method.
func (m *MockVector[S, A]) Set(index int, v A) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Set", index, v)
	ret0, _ := ret[0].(error)
	return ret0
}

// Set indicates an expected call of Set.
func (mr *MockVectorMockRecorder[S, A]) Set(index any, v any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Set", reflect.TypeOf((*MockVector[S, A])(nil).Set), index, v)
}

// SetUnchecked mocks base method.
func (m *MockVector[S, A]) SetUnchecked(index int, v A) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetUnchecked", index, v)
}

// SetUnchecked indicates an expected call of SetUnchecked.
func (mr *MockVectorMockRecorder[S, A]) SetUnchecked(index any, v any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetUnchecked", reflect.TypeOf((*MockVector[S, A])(nil).SetUnchecked), index, v)
}
