// Package preferences persists the current device user's registration as a
// single-slot record of three string keys under a named store.
package preferences

import (
	"context"
	"database/sql"
)

// DefaultName is the store name the onboarding screens read and write.
const DefaultName = "whatsclone.preferencias"

// Fixed keys of the persisted layout.
const (
	KeyName  = "nome"
	KeyPhone = "telefone"
	KeyToken = "TOKEN"
)

// Record is the registration as read back from a store. A field that was never
// written is returned with Valid set to false.
type Record struct {
	Name  sql.NullString
	Phone sql.NullString
	Token sql.NullString
}

// Store persists one registration record. Save overwrites all three keys and
// returns only after the write is committed. The keys are written one by one,
// so a reader racing an interrupted Save may see a mix of generations.
type Store interface {
	Save(ctx context.Context, name, phone, token string) error
	Load(ctx context.Context) (Record, error)
}

// Value builds a present field.
func Value(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func (r *Record) set(key, value string) {
	switch key {
	case KeyName:
		r.Name = Value(value)
	case KeyPhone:
		r.Phone = Value(value)
	case KeyToken:
		r.Token = Value(value)
	}
}

func keys() []string {
	return []string{KeyName, KeyPhone, KeyToken}
}
