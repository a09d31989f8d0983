package render

import "github.com/zoobzio/astddl/internal/types"

// Capabilities describes the DDL features supported by a dialect family.
type Capabilities struct {
	ConditionalDrop bool // DROP TABLE IF EXISTS
	DropCascade     bool // DROP TABLE ... CASCADE
	FallbackBlock   bool // anonymous block able to swallow a missing-object error
}

// nativeCapabilities applies to every family without an entry below.
var nativeCapabilities = Capabilities{
	ConditionalDrop: true,
	DropCascade:     true,
}

// Families known to deviate from nativeCapabilities.
var familyCapabilities = map[types.Family]Capabilities{
	types.FamilyDB2:       {ConditionalDrop: false, DropCascade: false, FallbackBlock: true},
	types.FamilyDerby:     {ConditionalDrop: false, DropCascade: false, FallbackBlock: false},
	types.FamilyFirebird:  {ConditionalDrop: false, DropCascade: false, FallbackBlock: true},
	types.FamilyOracle:    {ConditionalDrop: false, DropCascade: false, FallbackBlock: true}, // CASCADE CONSTRAINTS only
	types.FamilySQLite:    {ConditionalDrop: true, DropCascade: false},
	types.FamilySQLServer: {ConditionalDrop: true, DropCascade: false},
}

// CapabilitiesFor returns the capabilities of a family.
// Unlisted families, including values outside the enumeration, get
// full native support.
func CapabilitiesFor(f types.Family) Capabilities {
	if c, ok := familyCapabilities[f]; ok {
		return c
	}
	return nativeCapabilities
}

// SupportsConditionalDrop reports whether the family accepts
// DROP TABLE IF EXISTS natively.
func SupportsConditionalDrop(f types.Family) bool {
	return CapabilitiesFor(f).ConditionalDrop
}
