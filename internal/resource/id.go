package resource

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// GlobalID is the zero value of ID, representing the ID of the abstract
// top-level "global" entity.
var GlobalID = ID{}

// ID uniquely identifies a playpen resource.
type ID struct {
	id   uuid.UUID
	kind Kind
}

func NewID(k Kind) ID {
	return ID{
		id:   uuid.New(),
		kind: k,
	}
}

func (id ID) Kind() Kind {
	return id.kind
}

func (id ID) String() string {
	return fmt.Sprintf("%s-%s", id.kind.String(), id.id.String())
}

func (id ID) LogValue() slog.Value {
	return slog.StringValue(id.String())
}

func IDFromString(s string) (ID, error) {
	encKind, encID, found := strings.Cut(s, "-")
	if !found {
		return ID{}, fmt.Errorf("invalid identifier: %s", s)
	}

	kind, err := kindString(encKind)
	if err != nil {
		return ID{}, fmt.Errorf("decoding identifier: %w", err)
	}

	id, err := uuid.Parse(encID)
	if err != nil {
		return ID{}, fmt.Errorf("decoding identifier: %w", err)
	}

	return ID{id: id, kind: kind}, nil
}

func kindString(s string) (Kind, error) {
	for k := Global; k <= Log; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown kind: %s", s)
}
