package navstack

import (
	"fmt"

	"github.com/google/uuid"
)

// rootSpace namespaces every Id derived by this package.
var rootSpace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("navstack"))

// Id identifies a surface, gesture or layer across frames. Ids are derived
// structurally from a parent and a discriminator, so the same mount point
// addresses the same slot on every frame. The zero Id means "none".
type Id uuid.UUID

// NoId is the zero Id.
var NoId Id

// NewId derives a root Id from a source value.
func NewId(source any) Id {
	return Id(uuid.NewSHA1(rootSpace, []byte(fmt.Sprint(source))))
}

// With derives a child Id from id and a discriminator.
func (id Id) With(discriminator any) Id {
	return Id(uuid.NewSHA1(uuid.UUID(id), []byte(fmt.Sprint(discriminator))))
}

func (id Id) IsZero() bool {
	return id == NoId
}

func (id Id) String() string {
	if id.IsZero() {
		return "none"
	}
	return uuid.UUID(id).String()
}

func containsId(ids []Id, id Id) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
