package ports

import (
	"context"

	"github.com/forPelevin/takenotes/internal/types"
)

// TranscriptSource loads the diarized transcript identified by ref.
type TranscriptSource interface {
	Load(ctx context.Context, ref string) (types.Transcript, error)
}
