package clipboard

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Hash is a uint64 content digest stored as hex TEXT in the catalog.
type Hash uint64

var (
	_ fmt.Stringer  = (*Hash)(nil)
	_ sql.Scanner   = (*Hash)(nil)
	_ driver.Valuer = (*Hash)(nil)
)

// String convert hash to String
func (h Hash) String() string {
	return strconv.FormatUint(uint64(h), 16)
}

// Value implements driver.Valuer
func (h Hash) Value() (driver.Value, error) {
	return h.String(), nil
}

// Scan implements sql.Scanner
func (h *Hash) Scan(value any) error {
	if value == nil {
		*h = 0
		return nil
	}

	switch v := value.(type) {
	case string: // TEXT column
		u, err := strconv.ParseUint(v, 16, 64)
		if err != nil {
			return fmt.Errorf("failed to scan Hash(string): %w", err)
		}
		*h = Hash(u)
		return nil

	case []byte: // SQLite may return TEXT as BLOB
		u, err := strconv.ParseUint(string(v), 16, 64)
		if err != nil {
			return fmt.Errorf("failed to scan Hash([]byte): %w", err)
		}
		*h = Hash(u)
		return nil

	default: // should never happen if column is TEXT, but safe guard anyway
		return fmt.Errorf("unsupported type scanned for Hash: %T", value)
	}
}

// HashBytes returns the content digest used as the dedup key.
func HashBytes(b []byte) Hash {
	return Hash(xxhash.Sum64(b))
}

// HashString hashes the UTF-8 bytes of s.
func HashString(s string) Hash {
	return Hash(xxhash.Sum64String(s))
}
