package channel

import (
	"errors"
	"fmt"
)

var (
	ErrNegativeCount = errors.New("channel: negative read count")
	ErrWriterClosed  = errors.New("channel: writer closed")
)

// IncompleteReadError reports end-of-stream before a read contract was
// satisfied. Partial holds every byte consumed before the stream ended;
// those bytes are removed from the channel and will not be returned again.
type IncompleteReadError struct {
	Partial []byte
	// Expected is the byte count the caller asked for, or -1 when the
	// read was separator-delimited.
	Expected int
}

func (e *IncompleteReadError) Error() string {
	if e.Expected < 0 {
		return fmt.Sprintf("channel: stream ended after %d bytes with separator not found", len(e.Partial))
	}
	return fmt.Sprintf("channel: stream ended after %d of %d expected bytes", len(e.Partial), e.Expected)
}

// recoverPartial downgrades an incomplete read into a successful partial
// result. ReadLine is the one place this is allowed: a caller consuming
// lines expects a final unterminated line at stream end, not a failure.
func recoverPartial(data []byte, err error) ([]byte, error) {
	if err == nil {
		return data, nil
	}
	var incomplete *IncompleteReadError
	if errors.As(err, &incomplete) {
		return incomplete.Partial, nil
	}
	return nil, err
}
