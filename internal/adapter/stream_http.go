package adapter

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
)

const (
	ndjsonContentType = "application/x-ndjson"
	maxRecordSize     = 1 << 20
	maxErrorBodySize  = 64 << 10
)

// OpenFeed implements [FeedStreamer] over newline-delimited JSON. It GETs
// /api/tweets/stream?filter= and keeps the response body open; each
// non-blank line is one record.
func (h *httpServerAdapter) OpenFeed(ctx context.Context, filter string) (FeedStream, error) {
	req, err := h.newRequest(ctx, h.streamClient, true)
	if err != nil {
		return nil, fmt.Errorf("open feed: %w", err)
	}

	resp, err := req.
		SetHeader("Accept", ndjsonContentType).
		SetDoNotParseResponse(true).
		Get(withFilter(feedPath, filter))
	if err != nil {
		return nil, fmt.Errorf("open feed: %w", mapTransportError(err))
	}

	body := resp.RawBody()
	if !resp.IsSuccess() {
		payload, _ := io.ReadAll(io.LimitReader(body, maxErrorBodySize))
		_ = body.Close()
		return nil, fmt.Errorf("open feed: %w", mapStatus(resp.StatusCode(), payload))
	}

	h.logger.Debug().Str("filter", filter).Msg("feed opened")
	return newNDJSONStream(body), nil
}

type ndjsonStream struct {
	body   io.ReadCloser
	reader *bufio.Reader

	closeOnce sync.Once
	closeErr  error
}

func newNDJSONStream(body io.ReadCloser) *ndjsonStream {
	return &ndjsonStream{body: body, reader: bufio.NewReaderSize(body, 64<<10)}
}

// Next returns the next non-blank line. Blank lines are keep-alives. A line
// longer than maxRecordSize is discarded and reported as [ErrMalformed];
// the records after it are still readable.
func (s *ndjsonStream) Next() ([]byte, error) {
	for {
		line, oversized, err := s.readLine()
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, mapTransportError(err)
		}
		if oversized {
			return nil, errRecordTooLarge()
		}
		if line = bytes.TrimSpace(line); len(line) > 0 {
			return line, nil
		}
		if err != nil {
			return nil, io.EOF
		}
	}
}

// readLine reads up to and including the next newline. Once the line grows
// past maxRecordSize the rest of it is read and dropped.
func (s *ndjsonStream) readLine() ([]byte, bool, error) {
	var line []byte
	oversized := false
	for {
		chunk, err := s.reader.ReadSlice('\n')
		if !oversized {
			if len(line)+len(bytes.TrimSuffix(chunk, []byte("\n"))) > maxRecordSize {
				line, oversized = nil, true
			} else {
				line = append(line, chunk...)
			}
		}
		if !errors.Is(err, bufio.ErrBufferFull) {
			return line, oversized, err
		}
	}
}

func errRecordTooLarge() error {
	return newAPIError(ErrMalformed, 0, fmt.Sprintf("feed record exceeds %d bytes", maxRecordSize))
}

func (s *ndjsonStream) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.body.Close()
	})
	return s.closeErr
}
