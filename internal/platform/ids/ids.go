// Package ids genera los identificadores visibles de la app ("PET123456", "RBR042017").
package ids

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// Numeric devuelve prefix + 6 dígitos tomados de un UUID v4.
// La unicidad la verifica quien guarda (reintento ante colisión).
func Numeric(prefix string) string {
	u := uuid.New()
	n := binary.BigEndian.Uint32(u[:4]) % 1_000_000
	return fmt.Sprintf("%s%06d", prefix, n)
}
