package models

import (
	"net/url"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mytrout/buildingblocks/pkg/native"
)

var (
	customerID = uuid.MustParse("6f1c0d8e-4a4b-4d55-9a64-0c9f3f0b6a01")
	fieldID    = uuid.MustParse("0b5cbd3c-8f61-4d0c-8a2e-52bda1f8ad02")
	lookupID   = uuid.MustParse("c1f6e1d4-2f0e-4c7b-b4a1-9de3b07a1c03")
	arrayID    = uuid.MustParse("9a2d54f7-1c83-4e6a-bf0d-7e4a8f6b2d04")
	genericID  = uuid.MustParse("e4b7a913-5d2c-4f18-8c6e-3a1f9d0b7e05")
	appID      = uuid.MustParse("3d8f2a61-7b4e-4c95-a0d3-6e2b1f8c9a06")
	relID      = uuid.MustParse("58c3e0a7-9f12-4b6d-8e4a-1d7c2b9f0e07")
	conceptID  = uuid.MustParse("a7e1c5b9-3d20-4f8a-9b6c-4e0d2a1f7c08")
)

var blankValues = []string{"", "  ", "\r\n", " \t\r\n "}

func quote(s string) string { return strconv.Quote(s) }

func nativeType(t *testing.T, nt native.Type) *CoreType {
	t.Helper()
	ct, err := NewNativeType(nt)
	require.NoError(t, err)
	return ct
}

func stringType(t *testing.T) *CoreType { return nativeType(t, native.String) }

func testField(t *testing.T) *Field {
	t.Helper()
	f, err := NewField(fieldID, stringType(t), "Email", "Primary email address", FieldKey, nil)
	require.NoError(t, err)
	return f
}

func testEntity(t *testing.T) *Entity {
	t.Helper()
	e, err := NewEntity(customerID, "Customer", "A paying customer", EntityRecord, 17, 31, nil, testField(t))
	require.NoError(t, err)
	return e
}

func testLookup(t *testing.T) *Lookup {
	t.Helper()
	active, err := NewLookupItem(1, "Active", "Currently active", "")
	require.NoError(t, err)
	closed, err := NewLookupItem(2, "Closed", "No longer active", "kept for history")
	require.NoError(t, err)
	l, err := NewLookup(lookupID, "AccountStatus", "Status of an account", LookupNone, active, closed)
	require.NoError(t, err)
	return l
}

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func testApplication(t *testing.T) *Application {
	t.Helper()
	a, err := NewApplication(appID, "Ledger", "Example Corporation", "Example", "J. Doe", 2019,
		mustURL(t, "https://example.com/ledger"),
		mustURL(t, "https://example.com/license"),
		mustURL(t, "https://example.com/terms"),
		mustURL(t, "https://example.com/privacy"))
	require.NoError(t, err)
	return a
}

func listOf(t *testing.T, params ...*CoreType) *CoreType {
	t.Helper()
	ct, err := NewGenericType(genericID, nativeType(t, native.List), params...)
	require.NoError(t, err)
	return ct
}
