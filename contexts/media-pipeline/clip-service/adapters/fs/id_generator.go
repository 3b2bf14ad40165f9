package fs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ClipIDGenerator derives identifiers from wall-clock milliseconds plus a
// random suffix. The millisecond prefix keeps creation-time ordering in the
// file name; the uuid suffix closes the same-millisecond collision window
// that a bare timestamp leaves open under concurrent requests.
type ClipIDGenerator struct{}

func (ClipIDGenerator) NewID(_ context.Context) (string, error) {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix), nil
}
