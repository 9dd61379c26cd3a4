package models

import (
	"reflect"
	"strings"
)

// ComputedMembers are the CoreType members derived from its origin. They are
// never written by a serializer.
var ComputedMembers = []string{"Name", "Namespace"}

var coreTypeType = reflect.TypeOf(CoreType{})

// MemberPolicy is consulted by a serializer for every member it is about to
// write.
type MemberPolicy interface {
	Include(declaring reflect.Type, member string) bool
}

// ComputedMemberPolicy drops the computed members of CoreType and of any
// struct embedding it. Everything else is included.
type ComputedMemberPolicy struct{}

// Include implements MemberPolicy.
func (ComputedMemberPolicy) Include(declaring reflect.Type, member string) bool {
	return !IsComputedMember(declaring, member)
}

// IsComputedMember reports whether member, declared on declaring, is one of
// ComputedMembers. Member names match case-insensitively so wire names
// ("name", "namespace") are recognized too.
func IsComputedMember(declaring reflect.Type, member string) bool {
	if declaring == nil || !hasCoreTypeShape(declaring) {
		return false
	}
	for _, m := range ComputedMembers {
		if strings.EqualFold(m, member) {
			return true
		}
	}
	return false
}

func hasCoreTypeShape(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == coreTypeType {
		return true
	}
	if t.Kind() != reflect.Struct {
		return false
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && hasCoreTypeShape(f.Type) {
			return true
		}
	}
	return false
}
