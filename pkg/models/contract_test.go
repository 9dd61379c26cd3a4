package models

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type annotatedType struct {
	CoreType
	Note string
}

type annotatedPointer struct {
	*CoreType
}

type twiceRemoved struct {
	annotatedType
}

func TestIsComputedMember(t *testing.T) {
	tests := []struct {
		name      string
		declaring reflect.Type
		member    string
		want      bool
	}{
		{"name", reflect.TypeOf(CoreType{}), "Name", true},
		{"namespace", reflect.TypeOf(CoreType{}), "Namespace", true},
		{"wire casing", reflect.TypeOf(CoreType{}), "namespace", true},
		{"pointer", reflect.TypeOf(&CoreType{}), "Name", true},
		{"stored member", reflect.TypeOf(CoreType{}), "ID", false},
		{"embedding struct", reflect.TypeOf(annotatedType{}), "Name", true},
		{"embedding pointer", reflect.TypeOf(annotatedPointer{}), "Namespace", true},
		{"nested embedding", reflect.TypeOf(twiceRemoved{}), "Name", true},
		{"embedding struct own member", reflect.TypeOf(annotatedType{}), "Note", false},
		{"entity name is stored", reflect.TypeOf(Entity{}), "Name", false},
		{"non struct", reflect.TypeOf(""), "Name", false},
		{"nil type", nil, "Name", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsComputedMember(tt.declaring, tt.member))
		})
	}
}

func TestComputedMemberPolicy(t *testing.T) {
	var policy MemberPolicy = ComputedMemberPolicy{}
	ct := reflect.TypeOf(CoreType{})

	assert.False(t, policy.Include(ct, "Name"))
	assert.False(t, policy.Include(ct, "Namespace"))
	assert.True(t, policy.Include(ct, "IsArray"))
	assert.True(t, policy.Include(reflect.TypeOf(Field{}), "Name"))
}
